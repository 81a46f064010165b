package notifications

import (
	"clinicadmin_go/config"
	"clinicadmin_go/database"
	"clinicadmin_go/models"
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// Queue item structure stored in Redis. Kept minimal to reduce payload
// size; the database row is the source of truth, the queue only carries
// what the dashboard push needs.
type queuedDispatch struct {
	NotificationID uint      `json:"notification_id"`
	TitleEn        string    `json:"title_en"`
	TitleAr        string    `json:"title_ar"`
	MessageEn      string    `json:"message_en"`
	MessageAr      string    `json:"message_ar"`
	DispatchedAt   time.Time `json:"dispatched_at"`
}

const redisListKey = "notifications:dispatch:queue"

// WSHub interface for pushing events to connected dashboard sessions
type WSHub interface {
	BroadcastEvent(eventType string, data interface{})
}

// defaultHub lets services created in different parts of the app (e.g. the
// cron dispatcher) share the same WebSocket hub without manual wiring.
var defaultHub WSHub

// SetDefaultWSHub sets the package-level default WebSocket hub used by new
// Service instances.
func SetDefaultWSHub(h WSHub) {
	defaultHub = h
}

// Service marks scheduled notifications as sent and pushes a live event to
// the dashboard. With Redis enabled the push goes through a queue drained by
// a worker; otherwise it happens inline.
type Service struct {
	db       *gorm.DB
	redis    *redis.Client
	useRedis bool
	wsHub    WSHub
}

func NewService() *Service {
	return &Service{
		db:       database.GetDB(),
		redis:    database.GetRedisClient(),
		useRedis: config.AppConfig != nil && config.AppConfig.UseRedisNotifications && database.GetRedisClient() != nil,
		wsHub:    defaultHub,
	}
}

// SetWebSocketHub sets the WebSocket hub for real-time pushes
func (s *Service) SetWebSocketHub(hub WSHub) {
	s.wsHub = hub
}

// Dispatch marks a due notification as sent and pushes it to the dashboard.
func (s *Service) Dispatch(n *models.Notification) error {
	now := time.Now()
	if err := s.db.Model(n).Updates(map[string]interface{}{
		"sent":    true,
		"sent_at": &now,
	}).Error; err != nil {
		return err
	}

	item := queuedDispatch{
		NotificationID: n.ID,
		TitleEn:        n.TitleEn,
		TitleAr:        n.TitleAr,
		MessageEn:      n.MessageEn,
		MessageAr:      n.MessageAr,
		DispatchedAt:   now,
	}

	if s.useRedis {
		b, err := json.Marshal(item)
		if err != nil {
			return err
		}
		if err = s.redis.RPush(context.Background(), redisListKey, b).Err(); err == nil {
			return nil // queued successfully
		}
		log.Printf("[notif] Redis queue failed, falling back to direct push: %v", err)
	}

	s.push(item)
	return nil
}

func (s *Service) push(item queuedDispatch) {
	if s.wsHub == nil {
		return
	}
	s.wsHub.BroadcastEvent("notification", item)
}

// StartWorker drains the Redis dispatch queue until stop is closed.
func (s *Service) StartWorker(stop chan struct{}) {
	if !s.useRedis {
		return
	}
	go func() {
		ctx := context.Background()
		for {
			select {
			case <-stop:
				return
			default:
			}

			res, err := s.redis.BLPop(ctx, 5*time.Second, redisListKey).Result()
			if err != nil {
				if err != redis.Nil {
					log.Printf("[notif] worker BLPop error: %v", err)
					time.Sleep(time.Second)
				}
				continue
			}
			if len(res) < 2 {
				continue
			}

			var item queuedDispatch
			if err := json.Unmarshal([]byte(res[1]), &item); err != nil {
				log.Printf("[notif] worker unmarshal error: %v", err)
				continue
			}
			s.push(item)
		}
	}()
}
