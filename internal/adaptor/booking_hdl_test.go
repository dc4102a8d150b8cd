package adaptor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"lcm-booking/internal/dto/request"
	"lcm-booking/internal/dto/response"
	"lcm-booking/internal/usecase"
	"lcm-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// MockBookingService is a mock implementation of usecase.BookingService
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingCreatedResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.BookingCreatedResponse), args.Error(1)
}

func (m *MockBookingService) ListBookings(ctx context.Context, dateFilter string) ([]*response.BookingResponse, error) {
	args := m.Called(ctx, dateFilter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*response.BookingResponse), args.Error(1)
}

func postBooking(t *testing.T, handler *BookingHandler, body []byte) (*httptest.ResponseRecorder, utils.Response) {
	t.Helper()

	req := httptest.NewRequest("POST", "/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.CreateBooking(rec, req)

	var envelope utils.Response
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return rec, envelope
}

func TestCreateBookingHandler_Success(t *testing.T) {
	mockService := &MockBookingService{}
	handler := NewBookingHandler(mockService, zap.NewNop())

	created := &response.BookingCreatedResponse{
		ID:               "e4d1f9a2-0000-0000-0000-000000000001",
		EndTime:          "09:45",
		TotalDurationMin: 90,
		TotalPricePence:  5000,
	}
	mockService.On("CreateBooking", mock.Anything, mock.AnythingOfType("*request.CreateBookingRequest")).
		Return(created, nil)

	body, _ := json.Marshal(request.CreateBookingRequest{
		CustomerName: "Jo Bloggs",
		Address:      "1 High Street",
		Postcode:     "LS1 4AB",
		Date:         "2025-08-22",
		StartTime:    "08:15",
		ServiceIDs:   []string{"e4d1f9a2-0000-0000-0000-0000000000aa"},
	})

	rec, envelope := postBooking(t, handler, body)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, envelope.Status)

	data, _ := json.Marshal(envelope.Data)
	var result response.BookingCreatedResponse
	assert.NoError(t, json.Unmarshal(data, &result))
	assert.Equal(t, "09:45", result.EndTime)
	assert.Equal(t, 5000, result.TotalPricePence)
}

func TestCreateBookingHandler_InvalidBody(t *testing.T) {
	mockService := &MockBookingService{}
	handler := NewBookingHandler(mockService, zap.NewNop())

	rec, envelope := postBooking(t, handler, []byte("{not json"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, envelope.Status)
	mockService.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
}

func TestCreateBookingHandler_ValidationRejections(t *testing.T) {
	rejections := []error{
		fmt.Errorf("%w: Address: This field is required", usecase.ErrMissingField),
		fmt.Errorf("%w: date must be YYYY-MM-DD", usecase.ErrInvalidInput),
		fmt.Errorf("%w: bookings are Monday to Friday only", usecase.ErrNonBookableDay),
		usecase.ErrNoValidServices,
		fmt.Errorf("%w: job would end at 14:30, which is after 14:00", usecase.ErrWorkdayOverflow),
	}

	for _, rejection := range rejections {
		mockService := &MockBookingService{}
		handler := NewBookingHandler(mockService, zap.NewNop())
		mockService.On("CreateBooking", mock.Anything, mock.Anything).Return(nil, rejection)

		rec, envelope := postBooking(t, handler, []byte(`{}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code, "error %v", rejection)
		assert.False(t, envelope.Status)
		assert.Equal(t, rejection.Error(), envelope.Message)
	}
}

func TestCreateBookingHandler_InternalError(t *testing.T) {
	mockService := &MockBookingService{}
	handler := NewBookingHandler(mockService, zap.NewNop())
	mockService.On("CreateBooking", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("persist booking: connection refused"))

	rec, envelope := postBooking(t, handler, []byte(`{}`))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", envelope.Message)
}

func TestListBookingsHandler_PassesDateFilter(t *testing.T) {
	mockService := &MockBookingService{}
	handler := NewBookingHandler(mockService, zap.NewNop())

	mockService.On("ListBookings", mock.Anything, "2025-08-22").
		Return([]*response.BookingResponse{}, nil)

	req := httptest.NewRequest("GET", "/bookings?date=2025-08-22", nil)
	rec := httptest.NewRecorder()

	handler.ListBookings(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	mockService.AssertExpectations(t)
}
