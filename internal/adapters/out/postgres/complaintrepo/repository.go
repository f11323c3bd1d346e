package complaintrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/complaint"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type GormComplaintRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormComplaintRepository(db *gorm.DB, tracker aggregateTracker) *GormComplaintRepository {
	return &GormComplaintRepository{
		db:      db,
		tracker: tracker,
	}
}

// CreateSequence creates the register number sequence if it is missing.
func CreateSequence(db *gorm.DB) error {
	return db.Exec(fmt.Sprintf("CREATE SEQUENCE IF NOT EXISTS %s", NumberSequence)).Error
}

func (r *GormComplaintRepository) NextNumber(ctx context.Context, year int) (string, error) {
	var seq int64
	if err := r.db.WithContext(ctx).Raw(fmt.Sprintf("SELECT nextval('%s')", NumberSequence)).Scan(&seq).Error; err != nil {
		return "", err
	}
	return complaint.FormatNumber(year, seq), nil
}

func (r *GormComplaintRepository) Add(ctx context.Context, aggregate *complaint.Complaint) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update rewrites the complaint row and replaces its return lines.
func (r *GormComplaintRepository) Update(ctx context.Context, aggregate *complaint.Complaint) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	lines := dto.ReturnLines
	dto.ReturnLines = nil

	db := r.db.WithContext(ctx)
	result := db.Model(&ComplaintDTO{}).Where("id = ?", dto.ID).Select("*").Omit("id", "created_at").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("complaint", aggregate.ID().String())
	}

	if err := db.Where("complaint_id = ?", dto.ID).Delete(&ReturnLineDTO{}).Error; err != nil {
		return err
	}
	if len(lines) > 0 {
		if err := db.Create(&lines).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormComplaintRepository) Get(ctx context.Context, id kernel.UUID) (*complaint.Complaint, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ComplaintDTO
	err := r.db.WithContext(ctx).
		Preload("ReturnLines", orderByPosition).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("complaint", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormComplaintRepository) Find(ctx context.Context, filter complaint.Filter) ([]*complaint.Complaint, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	q := r.db.WithContext(ctx).
		Preload("ReturnLines", orderByPosition).
		Where("date_reported BETWEEN ? AND ?", dateOnly(filter.DateFrom), dateOnly(filter.DateTo))

	if len(filter.Departments) > 0 {
		q = q.Where("department IN ?", filter.Departments)
	}
	if filter.Type != complaint.TypeNone {
		q = q.Where("complaint_type = ?", string(filter.Type))
		if filter.SubIssue != "" {
			q = q.Where("sub_issue = ?", filter.SubIssue)
		}
	}
	if filter.ReturnInvolvedOnly {
		q = q.Where("return_involved")
	}
	if len(filter.ChannelTags) > 0 {
		q = q.Where("channel_tags && ?", pq.StringArray(filter.ChannelTags))
	}
	if filter.Status != "" {
		q = q.Where("status = ?", string(filter.Status))
	}

	var dtos []ComplaintDTO
	if err := q.Order("date_reported, number").Find(&dtos).Error; err != nil {
		return nil, err
	}

	complaints := make([]*complaint.Complaint, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		complaints = append(complaints, c)
	}

	return complaints, nil
}

func (r *GormComplaintRepository) CountByStatus(ctx context.Context, from, to time.Time) (map[complaint.Status]int, error) {
	rows, err := r.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM complaints
		WHERE date_reported BETWEEN ? AND ?
		GROUP BY status
	`, dateOnly(from), dateOnly(to)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[complaint.Status]int)
	for rows.Next() {
		var status string
		var n int
		if err = rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[complaint.Status(status)] = n
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

func orderByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}

func dateOnly(t time.Time) string {
	return t.Format(time.DateOnly)
}
