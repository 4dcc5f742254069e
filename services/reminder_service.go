package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"esthecrm-backend/models"
	"esthecrm-backend/store"
	"esthecrm-backend/utils"
)

// ReminderService sends a birthday SMS to customers whose birthday falls
// within the next week. It runs from a daily cron job.
type ReminderService struct {
	store  store.Store
	client *twilio.RestClient
	from   string
}

func NewReminderService(st store.Store, accountSID, authToken, from string) *ReminderService {
	return &ReminderService{
		store: st,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
		}),
		from: from,
	}
}

// StartScheduler registers the daily 9 AM run and starts the cron loop.
func (s *ReminderService) StartScheduler() *cron.Cron {
	c := cron.New()
	c.AddFunc("0 9 * * *", s.SendBirthdayReminders)
	c.Start()
	log.Println("Reminder scheduler started")
	return c
}

func (s *ReminderService) SendBirthdayReminders() {
	log.Println("Starting birthday reminder processing...")

	customers, err := s.store.Customers().List(context.Background())
	if err != nil {
		log.Printf("Failed to fetch customers: %v", err)
		return
	}

	upcoming := UpcomingBirthdays(customers, time.Now(), 7)
	for _, customer := range upcoming {
		s.sendReminder(customer)
	}

	log.Printf("Birthday reminder processing completed (%d sent)", len(upcoming))
}

// UpcomingBirthdays returns the customers whose birthday, projected onto the
// current year, falls within the next windowDays days (today included).
// Customers without a parseable birth date or phone number are skipped.
func UpcomingBirthdays(customers []models.Customer, now time.Time, windowDays int) []models.Customer {
	today := utils.BeginningOfDay(now)

	var upcoming []models.Customer
	for _, c := range customers {
		if c.BirthDate == "" || c.Phone == "" {
			continue
		}
		birth, err := time.Parse("2006-01-02", c.BirthDate)
		if err != nil {
			continue
		}
		event := time.Date(today.Year(), birth.Month(), birth.Day(), 0, 0, 0, 0, today.Location())
		if event.Before(today) {
			event = event.AddDate(1, 0, 0)
		}
		if utils.DaysBetween(today, event) < windowDays {
			upcoming = append(upcoming, c)
		}
	}
	return upcoming
}

func (s *ReminderService) sendReminder(customer models.Customer) {
	message := fmt.Sprintf("%s님, 곧 생일을 축하드려요! 생일 기념 케어 예약을 기다리고 있을게요.", customer.Name)

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(customer.Phone)
	params.SetFrom(s.from)
	params.SetBody(message)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("Failed to send reminder to %s: %v", customer.Phone, err)
		return
	}
	if resp.Sid != nil {
		log.Printf("Reminder sent to %s, SID: %s", customer.Phone, *resp.Sid)
	} else {
		log.Printf("Reminder sent to %s, but no SID returned", customer.Phone)
	}
}
