// Package xlsx renders the complaint list attached to the monthly report.
package xlsx

import (
	"fmt"
	"strings"

	"logistics/internal/core/domain/model/complaint"

	"github.com/xuri/excelize/v2"
)

const SheetName = "Complaints"

const dateLayout = "02/01/2006"

var headers = []string{
	"Complaint Date",
	"Complaint Number",
	"Customer",
	"Channel",
	"Sales Order/Display Name",
	"Delivery Order",
	"Invoice",
	"Complaint Type",
	"Product Quality Issue",
	"Delivery/Shipping Issue",
	"Billing/Payment Issue",
	"Customer Service Issue",
	"Status",
	"Complaint Description",
	"Resolution / Follow-up",
	"Internal Notes",
	"Returned Products/Product",
	"Returned Products/Returned Qty",
}

// subIssueColumn is the zero-based column that holds the sub-issue of each
// complaint type.
var subIssueColumn = map[complaint.Type]int{
	complaint.TypeProductQuality: 8,
	complaint.TypeDeliveryIssue:  9,
	complaint.TypeBillingIssue:   10,
	complaint.TypeService:        11,
}

// wrappedFrom is the first column with multi-line text.
const wrappedFrom = 13

var columnWidths = []struct {
	from, to string
	width    float64
}{
	{"A", "A", 12},
	{"B", "C", 18},
	{"D", "H", 20},
	{"I", "L", 22},
	{"N", "P", 40},
	{"Q", "R", 25},
}

type ComplaintWorkbookRenderer struct{}

func NewComplaintWorkbookRenderer() *ComplaintWorkbookRenderer {
	return &ComplaintWorkbookRenderer{}
}

// Render writes one row per complaint, in the given order, below a header
// row.
func (r *ComplaintWorkbookRenderer) Render(complaints []*complaint.Complaint) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDDDDD"}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}
	wrapStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		return nil, err
	}

	header := make([]any, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	if err = f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, err
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err = f.SetCellStyle(SheetName, "A1", lastHeader, headerStyle); err != nil {
		return nil, err
	}

	for i, c := range complaints {
		row := i + 2
		values := rowValues(c)
		start, _ := excelize.CoordinatesToCellName(1, row)
		if err = f.SetSheetRow(SheetName, start, &values); err != nil {
			return nil, fmt.Errorf("complaint %s: %w", c.Number(), err)
		}

		from, _ := excelize.CoordinatesToCellName(wrappedFrom+1, row)
		to, _ := excelize.CoordinatesToCellName(len(headers), row)
		if err = f.SetCellStyle(SheetName, from, to, wrapStyle); err != nil {
			return nil, err
		}
	}

	for _, w := range columnWidths {
		if err = f.SetColWidth(SheetName, w.from, w.to, w.width); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func rowValues(c *complaint.Complaint) []any {
	values := make([]any, len(headers))
	for i := range values {
		values[i] = ""
	}

	values[0] = c.DateReported().Format(dateLayout)
	values[1] = c.Number()
	values[2] = c.Customer().Name
	values[3] = channelText(c)
	values[4] = c.SaleOrderRef()
	values[5] = c.DeliveryOrderRef()
	values[6] = c.InvoiceRef()
	values[7] = c.Type().Label()
	if col, ok := subIssueColumn[c.Type()]; ok {
		values[col] = c.SubIssue()
	}
	values[12] = c.Status().Label()
	values[13] = c.Description()
	values[14] = c.Resolution()
	values[15] = c.InternalNote()

	lines := c.ReturnLines()
	products := make([]string, 0, len(lines))
	quantities := make([]string, 0, len(lines))
	for _, l := range lines {
		products = append(products, l.Product)
		quantities = append(quantities, l.QuantityReturned.String())
	}
	values[16] = strings.Join(products, "\n")
	values[17] = strings.Join(quantities, "\n")

	return values
}

// channelText prefers the channel tags and falls back to the channel label.
func channelText(c *complaint.Complaint) string {
	if tags := c.ChannelTags(); len(tags) > 0 {
		return strings.Join(tags, ", ")
	}
	return c.Channel().Label()
}
