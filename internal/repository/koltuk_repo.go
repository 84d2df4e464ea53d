package repository

import (
	"context"

	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KoltukRepository owns the per-trip seat rows. Upsert is the only write
// path for occupancy: assigning an occupied seat updates the same row, so a
// (sefer, koltuk) pair can never hold two assignments.
type KoltukRepository interface {
	Upsert(ctx context.Context, k *model.Koltuk) error
	Delete(ctx context.Context, seferID uint, koltukNo int) error
	ListBySefer(ctx context.Context, seferID uint) ([]model.Koltuk, error)
	ListBySeferIDs(ctx context.Context, seferIDs []uint) ([]model.Koltuk, error)
}

type koltukRepo struct{ db *gorm.DB }

func NewKoltukRepository(db *gorm.DB) KoltukRepository { return &koltukRepo{db: db} }

func (r *koltukRepo) Upsert(ctx context.Context, k *model.Koltuk) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "sefer_id"}, {Name: "koltuk_no"}},
		DoUpdates: clause.AssignmentColumns([]string{"durak", "odeme_turu", "ucret", "updated_at"}),
	}).Create(k).Error
}

// Delete removes the assignment; deleting a vacant seat affects zero rows
// and is not an error.
func (r *koltukRepo) Delete(ctx context.Context, seferID uint, koltukNo int) error {
	return r.db.WithContext(ctx).
		Where("sefer_id = ? AND koltuk_no = ?", seferID, koltukNo).
		Delete(&model.Koltuk{}).Error
}

func (r *koltukRepo) ListBySefer(ctx context.Context, seferID uint) ([]model.Koltuk, error) {
	var koltuklar []model.Koltuk
	err := r.db.WithContext(ctx).
		Where("sefer_id = ?", seferID).
		Order("koltuk_no ASC").
		Find(&koltuklar).Error
	return koltuklar, err
}

func (r *koltukRepo) ListBySeferIDs(ctx context.Context, seferIDs []uint) ([]model.Koltuk, error) {
	if len(seferIDs) == 0 {
		return nil, nil
	}
	var koltuklar []model.Koltuk
	err := r.db.WithContext(ctx).
		Where("sefer_id IN ?", seferIDs).
		Order("sefer_id ASC, koltuk_no ASC").
		Find(&koltuklar).Error
	return koltuklar, err
}
