package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"lcm-booking/internal/data/entity"
	"lcm-booking/internal/data/repository"
	"lcm-booking/internal/dto/request"
	"lcm-booking/internal/dto/response"
	"lcm-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// Notifier sends a best-effort notification. It reports the outcome but must
// never surface a failure into the booking flow.
type Notifier interface {
	Notify(ctx context.Context, subject, body string, recipients []string) (bool, string)
}

type BookingService interface {
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingCreatedResponse, error)
	ListBookings(ctx context.Context, dateFilter string) ([]*response.BookingResponse, error)
}

type bookingService struct {
	repo     *repository.Repository
	window   BookingWindow
	notifier Notifier
	emailTo  string
	log      *zap.Logger
}

func NewBookingService(repo *repository.Repository, config *utils.Config, notifier Notifier, log *zap.Logger) BookingService {
	return &bookingService{
		repo:     repo,
		window:   NewBookingWindow(config.Booking),
		notifier: notifier,
		emailTo:  config.Email.To,
		log:      log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingCreatedResponse, error) {
	req.Postcode = strings.ToUpper(strings.TrimSpace(req.Postcode))

	// Required fields
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrMissingField, utils.FormatValidationErrors(errs))
	}

	// Parse date and start time
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}

	startMin, err := utils.ParseClock(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: start_time must be HH:MM", ErrInvalidInput)
	}

	// Day rules
	if !s.window.Weekday(date) {
		return nil, fmt.Errorf("%w: bookings are Monday to Friday only", ErrNonBookableDay)
	}
	if !s.window.OnOrAfterLaunch(date) {
		return nil, fmt.Errorf("%w: bookings start from %s",
			ErrNonBookableDay, s.window.LaunchDate.Format(dateLayout))
	}

	// Resolve selected services. Unknown or malformed ids are dropped; only
	// a fully unmatched selection rejects the request.
	serviceIDs := make([]uuid.UUID, 0, len(req.ServiceIDs))
	for _, raw := range req.ServiceIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			continue
		}
		serviceIDs = append(serviceIDs, id)
	}

	services, err := s.repo.Service.FindByIDs(ctx, serviceIDs)
	if err != nil {
		s.log.Error("Failed to resolve services", zap.Error(err))
		return nil, fmt.Errorf("resolve services: %w", err)
	}
	if len(services) == 0 {
		return nil, ErrNoValidServices
	}

	totalPrice, totalDuration := aggregateTotals(services)

	// Working-hours rules
	if !s.window.StartsAfterOpen(startMin) {
		return nil, fmt.Errorf("%w: bookings cannot start before %s",
			ErrWorkdayOverflow, utils.FormatClock(s.window.WorkStartMin))
	}

	ok, endMin := s.window.FitsWorkday(startMin, totalDuration)
	if !ok {
		return nil, fmt.Errorf("%w: job would end at %s, which is after %s",
			ErrWorkdayOverflow, utils.FormatClock(endMin), utils.FormatClock(s.window.WorkEndMin))
	}

	booking := &entity.Booking{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now().UTC(),
		},
		CustomerName:     req.CustomerName,
		Email:            optional(req.Email),
		Phone:            optional(req.Phone),
		Address:          req.Address,
		Postcode:         req.Postcode,
		Date:             date,
		StartMin:         startMin,
		EndMin:           endMin,
		Notes:            optional(req.Notes),
		TotalPricePence:  totalPrice,
		TotalDurationMin: totalDuration,
	}

	resolvedIDs := make([]uuid.UUID, len(services))
	for i, service := range services {
		resolvedIDs[i] = service.ID
	}

	if err := s.repo.Booking.CreateWithServices(ctx, booking, resolvedIDs); err != nil {
		s.log.Error("Failed to persist booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return nil, fmt.Errorf("persist booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("date", req.Date),
		zap.String("start_time", req.StartTime),
		zap.Int("service_count", len(services)),
		zap.Int("total_price_pence", totalPrice),
		zap.Int("total_duration_min", totalDuration),
	)

	// Best-effort confirmation email. The booking is committed; a slow or
	// failing notifier must not affect it.
	go s.sendConfirmation(context.WithoutCancel(ctx), booking)

	return &response.BookingCreatedResponse{
		ID:               booking.ID.String(),
		EndTime:          utils.FormatClock(endMin),
		TotalDurationMin: totalDuration,
		TotalPricePence:  totalPrice,
	}, nil
}

func (s *bookingService) sendConfirmation(ctx context.Context, booking *entity.Booking) {
	subject := fmt.Sprintf("LCM Booking Confirmation - %s - %s %s",
		booking.CustomerName,
		booking.Date.Format(dateLayout),
		utils.FormatClock(booking.StartMin),
	)
	body := fmt.Sprintf(
		"Thank you for booking with LCM Oven Cleaning.\nDate: %s\nStart: %s\nEnd: %s\nPostcode: %s\nTotal: £%.2f",
		booking.Date.Format(dateLayout),
		utils.FormatClock(booking.StartMin),
		utils.FormatClock(booking.EndMin),
		booking.Postcode,
		float64(booking.TotalPricePence)/100,
	)

	recipients := []string{}
	if s.emailTo != "" {
		recipients = append(recipients, s.emailTo)
	}
	if booking.Email != nil && *booking.Email != "" {
		recipients = append(recipients, *booking.Email)
	}

	sent, msg := s.notifier.Notify(ctx, subject, body, recipients)
	if !sent {
		s.log.Warn("Booking confirmation not sent",
			zap.String("booking_id", booking.ID.String()),
			zap.String("reason", msg),
		)
		return
	}

	s.log.Info("Booking confirmation sent",
		zap.String("booking_id", booking.ID.String()),
		zap.Int("recipients", len(recipients)),
	)
}

func (s *bookingService) ListBookings(ctx context.Context, dateFilter string) ([]*response.BookingResponse, error) {
	var bookings []*entity.Booking
	var err error

	// A malformed date filter is ignored rather than rejected; the full list
	// is returned instead.
	if date, parseErr := time.Parse(dateLayout, dateFilter); dateFilter != "" && parseErr == nil {
		bookings, err = s.repo.Booking.FindByDate(ctx, date)
	} else {
		bookings, err = s.repo.Booking.FindAll(ctx)
	}
	if err != nil {
		s.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	result := make([]*response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		result[i] = response.BookingToResponse(booking)
	}

	return result, nil
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
