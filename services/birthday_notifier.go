// services/birthday_notifier.go
package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"barbershop-backend/config"
	"barbershop-backend/models"
	"barbershop-backend/repository"
	"barbershop-backend/utils"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// BirthdayNotifier texts customers a birthday greeting listing the shop's
// currently active offers. It is inert unless Twilio credentials are
// configured; send failures are logged and never affect request handling.
type BirthdayNotifier struct {
	db     *gorm.DB
	cfg    *config.Config
	client *twilio.RestClient
}

func NewBirthdayNotifier(db *gorm.DB, cfg *config.Config) *BirthdayNotifier {
	n := &BirthdayNotifier{db: db, cfg: cfg}

	if cfg.TwilioAccountSID != "" && cfg.TwilioAuthToken != "" {
		n.client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.TwilioAccountSID,
			Password: cfg.TwilioAuthToken,
		})
	}

	return n
}

// StartScheduler runs the greeting pass every day at 9 AM.
func (n *BirthdayNotifier) StartScheduler() {
	if n.client == nil {
		log.Println("Birthday notifier disabled: Twilio credentials not configured")
		return
	}

	c := cron.New()
	c.AddFunc("0 9 * * *", n.SendBirthdayGreetings)
	c.Start()
	log.Println("Birthday notifier scheduler started")
}

// SendBirthdayGreetings texts every user whose date of birth falls on
// today's calendar day.
func (n *BirthdayNotifier) SendBirthdayGreetings() {
	log.Println("Starting birthday greeting processing...")

	now := time.Now()

	var users []models.User
	if err := n.db.Where("date_of_birth IS NOT NULL AND contact_number <> ''").Find(&users).Error; err != nil {
		log.Printf("Failed to fetch users: %v", err)
		return
	}

	offers, err := repository.ListActiveOffers(n.db, now)
	if err != nil {
		log.Printf("Failed to fetch active offers: %v", err)
		offers = nil
	}

	sent := 0
	for i := range users {
		user := &users[i]
		if user.DateOfBirth == nil || !utils.SameMonthDay(*user.DateOfBirth, now) {
			continue
		}

		body := n.buildGreeting(user, offers)
		if err := n.sendSMS(user.ContactNumber, body); err != nil {
			log.Printf("Failed to send birthday SMS to user %d: %v", user.ID, err)
			continue
		}
		sent++
	}

	log.Printf("Birthday greeting processing completed, %d sent", sent)
}

func (n *BirthdayNotifier) buildGreeting(user *models.User, offers []models.Offer) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s, happy birthday from the team! Treat yourself today.", user.FullName)

	for _, offer := range offers {
		fmt.Fprintf(&b, " %s: %.0f%% off (%s).", offer.Name, offer.Discount, offer.ValidTillText)
	}

	return b.String()
}

func (n *BirthdayNotifier) sendSMS(to, body string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(n.cfg.TwilioFromNumber)
	params.SetBody(body)

	_, err := n.client.Api.CreateMessage(params)
	return err
}
