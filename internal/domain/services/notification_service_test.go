package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Vitalis058/tumaini-next-sub000/internal/domain/models"
	"github.com/Vitalis058/tumaini-next-sub000/internal/domain/repository"
	"github.com/Vitalis058/tumaini-next-sub000/internal/infrastructure/config"
	"github.com/Vitalis058/tumaini-next-sub000/internal/infrastructure/mail"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingMailer struct {
	sent []mail.Message
	err  error
}

func (m *recordingMailer) Send(ctx context.Context, msg mail.Message) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

func seedTour(t *testing.T, repo repository.TourRepository) *models.Tour {
	fields, err := validTourInput().Normalize()
	require.NoError(t, err)
	tour, err := repo.Create(context.Background(), fields)
	require.NoError(t, err)
	return tour
}

func TestNotificationService_Booking(t *testing.T) {
	repo := repository.NewInMemoryTourRepository()
	tour := seedTour(t, repo)
	mailer := &recordingMailer{}
	svc := NewNotificationService(mailer, repo, &config.Config{MailFrom: "no-reply@tumaini.example", NotifyEmail: "ops@tumaini.example"})

	err := svc.NotifyBooking(context.Background(), &models.BookingRequest{
		TourID:       tour.ID,
		Name:         "Amina Otieno",
		Email:        "amina@example.com",
		Phone:        "+254700000000",
		Participants: 2,
	})

	require.NoError(t, err)
	require.Len(t, mailer.sent, 2)
	assert.Equal(t, []string{"ops@tumaini.example"}, mailer.sent[0].To)
	assert.Equal(t, "amina@example.com", mailer.sent[0].ReplyTo)
	assert.Contains(t, mailer.sent[0].Body, "Mt Kenya Trek")
	assert.Contains(t, mailer.sent[0].Body, "Participants: 2")
	assert.Equal(t, []string{"amina@example.com"}, mailer.sent[1].To)
}

func TestNotificationService_BookingUnknownTour(t *testing.T) {
	mailer := &recordingMailer{}
	svc := NewNotificationService(mailer, repository.NewInMemoryTourRepository(), &config.Config{MailFrom: "no-reply@tumaini.example"})

	err := svc.NotifyBooking(context.Background(), &models.BookingRequest{TourID: 99, Name: "x", Email: "x@example.com", Participants: 1})

	assert.ErrorIs(t, err, repository.ErrTourNotFound)
	assert.Empty(t, mailer.sent)
}

func TestNotificationService_ContactFailureIsUpstream(t *testing.T) {
	mailer := &recordingMailer{err: errors.New("535 authentication failed")}
	svc := NewNotificationService(mailer, repository.NewInMemoryTourRepository(), &config.Config{MailFrom: "no-reply@tumaini.example"})

	err := svc.NotifyContact(context.Background(), &models.ContactMessage{Name: "Brian", Email: "brian@example.com", Message: "Hi"})

	assert.True(t, IsUpstream(err))
}
