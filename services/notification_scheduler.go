package services

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"clinicadmin_go/database"
	"clinicadmin_go/models"
	"clinicadmin_go/services/notifications"
)

// NotificationScheduler dispatches scheduled notifications once their
// scheduled_timestamp passes, and sweeps expired banners.
type NotificationScheduler struct {
	db    *gorm.DB
	notif *notifications.Service
	cron  *cron.Cron
}

// NewNotificationScheduler creates a new NotificationScheduler
func NewNotificationScheduler() *NotificationScheduler {
	return &NotificationScheduler{
		db:    database.DB,
		notif: notifications.NewService(),
		cron:  cron.New(),
	}
}

// Start registers the cron entries and starts the scheduler.
func (ns *NotificationScheduler) Start() {
	// Dispatch due notifications every minute
	ns.cron.AddFunc("* * * * *", ns.DispatchDueNotifications)
	// Report expired banners once a day at 03:00
	ns.cron.AddFunc("0 3 * * *", ns.SweepExpiredBanners)
	ns.cron.Start()

	logrus.Info("Notification scheduler started")
}

// Stop halts the scheduler.
func (ns *NotificationScheduler) Stop() {
	if ns.cron != nil {
		ns.cron.Stop()
	}
}

// DispatchDueNotifications finds unsent notifications whose scheduled time
// has passed and dispatches each of them. Dispatch is fire-and-forget; there
// is no delivery-status tracking beyond the sent flag.
func (ns *NotificationScheduler) DispatchDueNotifications() {
	now := time.Now()

	var due []models.Notification
	err := ns.db.Where("sent = ? AND scheduled_at <= ?", false, now).
		Order("scheduled_at ASC").
		Find(&due).Error
	if err != nil {
		logrus.WithError(err).Error("Failed to fetch due notifications")
		return
	}

	for i := range due {
		if err := ns.notif.Dispatch(&due[i]); err != nil {
			logrus.WithError(err).Errorf("Failed to dispatch notification %d", due[i].ID)
			continue
		}
	}

	if len(due) > 0 {
		logrus.Infof("Dispatched %d scheduled notifications", len(due))
	}
}

// SweepExpiredBanners logs banners whose window has closed. Banners are not
// deleted; the active flag is derived at render time, this sweep only gives
// operators visibility into stale campaigns.
func (ns *NotificationScheduler) SweepExpiredBanners() {
	var count int64
	if err := ns.db.Model(&models.Banner{}).
		Where("end_at < ?", time.Now()).
		Count(&count).Error; err != nil {
		logrus.WithError(err).Error("Failed to count expired banners")
		return
	}

	if count > 0 {
		logrus.Infof("%d banners have passed their end date", count)
	}
}
