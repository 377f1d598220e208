package services

import (
	"errors"

	"jolliville/internal/db"
	"jolliville/internal/models"

	"gorm.io/gorm"
)

// Point actions
const (
	ActionJournalEntry   = "journal entry"
	ActionStreakBonus    = "streak bonus"
	ActionShopPurchase   = "shop purchase"
	ActionShopSale       = "shop sale"
	ActionBundlePurchase = "bundle purchase"
	ActionVillageExpand  = "village expansion"
	ActionAdjustment     = "adjustment"
)

// Point values
const (
	PointsJournalEntry = 10 // first entry of the day
	PointsStreakBonus  = 25 // every 7th consecutive day
)

// StreakBonusEvery is the consecutive-day interval that pays the bonus.
const StreakBonusEvery = 7

// ErrInsufficientPoints is returned when a debit would take the balance
// below zero. The balance guard lives in the UPDATE's WHERE clause, so
// two tabs racing on the same profile cannot both win.
var ErrInsufficientPoints = errors.New("insufficient points")

// AddPoints writes a ledger row and adjusts the balance in one transaction.
// Amount is positive for credit, negative for debit.
func AddPoints(profileID uint, amount int, action string) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		return addPointsTx(tx, profileID, amount, action)
	})
}

// addPointsTx is the transactional body of AddPoints, reused by the shop
// and village services so dependent writes (ownership rows, placements,
// grid size) commit atomically with the balance change.
func addPointsTx(tx *gorm.DB, profileID uint, amount int, action string) error {
	entry := models.PointLog{
		ProfileID: profileID,
		Amount:    amount,
		Action:    action,
	}
	if err := tx.Create(&entry).Error; err != nil {
		return err
	}

	if amount < 0 {
		res := tx.Model(&models.Profile{}).
			Where("id = ? AND points >= ?", profileID, -amount).
			UpdateColumn("points", gorm.Expr("points + ?", amount))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInsufficientPoints
		}
		return nil
	}

	return tx.Model(&models.Profile{}).
		Where("id = ?", profileID).
		UpdateColumn("points", gorm.Expr("points + ?", amount)).
		Error
}

// PointLogs returns the most recent ledger entries for a profile.
func PointLogs(profileID uint, limit int) ([]models.PointLog, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	var logs []models.PointLog
	err := db.DB.Where("profile_id = ?", profileID).
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}
