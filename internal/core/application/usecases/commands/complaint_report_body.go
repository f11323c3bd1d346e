package commands

import (
	"bytes"
	"html/template"
	"time"

	"logistics/internal/core/domain/services"
)

var complaintReportTemplate = template.Must(template.New("complaint_report").Parse(`<p>Hi,</p>

<p>Here is the Monthly Complaints Report for <b>{{.From}}</b> to <b>{{.To}}</b>:</p>

<h3>1. Summary</h3>
<ul>
  <li><b>Total Complaints:</b> {{.S.Total}}</li>
  <li><b>New:</b> {{.S.New}}</li>
  <li><b>In Progress:</b> {{.S.InProgress}}</li>
  <li><b>Waiting Return Stock:</b> {{.S.WaitingReturn}}</li>
  <li><b>Closed:</b> {{.S.Closed}}</li>
</ul>

<h3>2. By Department</h3>
<p>{{template "buckets" .S.ByDepartment}}</p>

<h3>3. By Complaint Type</h3>
<p>{{template "buckets" .S.ByType}}</p>

<h3>4. By Channel</h3>
<p>{{template "buckets" .S.ByChannel}}</p>

<h3>5. Latest Complaints</h3>
<ul>{{range .S.Latest}}<li>{{.Number}} – {{.Customer.Name}} – {{.Status.Label}}</li>{{else}}<li>No complaints in this period.</li>{{end}}</ul>
{{if .S.Total}}
<p>Excel file with full complaint list is attached.</p>{{end}}
{{define "buckets"}}{{range $i, $b := .}}{{if $i}}<br>{{end}}- <b>{{$b.Name}}</b>: {{$b.Count}}{{else}}No data{{end}}{{end}}`))

// RenderComplaintReportBody renders the HTML mail body of a report.
func RenderComplaintReportBody(s services.ComplaintSummary) (string, error) {
	var buf bytes.Buffer
	err := complaintReportTemplate.Execute(&buf, struct {
		From string
		To   string
		S    services.ComplaintSummary
	}{
		From: s.DateFrom.Format(time.DateOnly),
		To:   s.DateTo.Format(time.DateOnly),
		S:    s,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
