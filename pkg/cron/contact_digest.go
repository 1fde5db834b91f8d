// pkg/cron/contact_digest.go

package cron

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"corpsite_backend/internal/repository"
	"corpsite_backend/pkg/email"
)

var (
	lastRunTime time.Time
	mutex       sync.Mutex
)

// InitContactDigestCron schedules the daily unread-inquiry digest email.
func InitContactDigestCron(contacts repository.ContactRepository) {
	c := cron.New()

	// Her gün saat 19:00'da çalışacak
	_, err := c.AddFunc("0 19 * * *", func() {
		mutex.Lock()
		defer mutex.Unlock()

		if time.Since(lastRunTime) < 23*time.Hour {
			log.Printf("Contact digest already sent today, skipping...")
			return
		}

		sendDailyContactDigest(contacts)
		lastRunTime = time.Now()
	})

	if err != nil {
		log.Printf("Could not initialize contact digest cron: %v", err)
		return
	}

	c.Start()
	log.Printf("Contact digest cron initialized successfully")
}

func sendDailyContactDigest(contacts repository.ContactRepository) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := contacts.CountUnread(ctx)
	if err != nil {
		log.Printf("Error counting unread submissions: %v", err)
		return
	}

	if count == 0 {
		log.Printf("No unread submissions, skipping digest")
		return
	}

	if email.GlobalEmailService == nil {
		return
	}

	if err := email.GlobalEmailService.SendDailyDigest(ctx, count, time.Now()); err != nil {
		log.Printf("Error sending contact digest: %v", err)
	} else {
		log.Printf("Contact digest sent (%d unread)", count)
	}
}
