package book_room

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	bookRoom "github.com/m04kA/SMC-HotelService/internal/usecase/book_room"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *bookRoom.Request) (*bookRoom.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookRoom.Response), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func setupRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/bookings", h.Handle).Methods(http.MethodPost)
	return r
}

func doRequest(t *testing.T, router *mux.Router, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Success(t *testing.T) {
	useCase := new(mockUseCase)
	router := setupRouter(NewHandler(useCase, nopLogger{}))

	useCase.On("Execute", mock.Anything, mock.MatchedBy(func(req *bookRoom.Request) bool {
		return req.GuestName == "Иван Петров" &&
			req.Category == "Standard" &&
			req.CheckIn.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	})).Return(&bookRoom.Response{
		BookingID:   "b-1",
		GuestName:   "Иван Петров",
		GuestEmail:  "ivan@example.com",
		RoomNumber:  101,
		Category:    "Standard",
		NightlyRate: 1000,
		CheckIn:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:    time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC),
		Nights:      3,
		TotalCost:   3000,
		CreatedAt:   time.Date(2023, 12, 20, 12, 0, 0, 0, time.UTC),
	}, nil)

	rec := doRequest(t, router, `{
		"guestName": "Иван Петров",
		"guestEmail": "ivan@example.com",
		"category": "Standard",
		"checkIn": "2024-01-01",
		"checkOut": "2024-01-04"
	}`)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp BookingResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "b-1", resp.ID)
	assert.Equal(t, 101, resp.RoomNumber)
	assert.Equal(t, "2024-01-01", resp.CheckIn)
	assert.Equal(t, 3, resp.Nights)
	assert.Equal(t, 3000.0, resp.TotalCost)

	useCase.AssertExpectations(t)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		useCaseErr     error
		expectedStatus int
	}{
		{
			name:           "некорректное тело запроса",
			body:           `{not json`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "некорректный формат даты",
			body: `{"guestName":"a","guestEmail":"a@a","category":"Standard",
				"checkIn":"01.01.2024","checkOut":"2024-01-04"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "выезд не позже заезда",
			body: `{"guestName":"a","guestEmail":"a@a","category":"Standard",
				"checkIn":"2024-01-04","checkOut":"2024-01-04"}`,
			useCaseErr:     bookRoom.ErrInvalidDateRange,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "нет свободных номеров",
			body: `{"guestName":"a","guestEmail":"a@a","category":"Standard",
				"checkIn":"2024-01-01","checkOut":"2024-01-04"}`,
			useCaseErr:     bookRoom.ErrNoAvailability,
			expectedStatus: http.StatusConflict,
		},
		{
			name: "внутренняя ошибка",
			body: `{"guestName":"a","guestEmail":"a@a","category":"Standard",
				"checkIn":"2024-01-01","checkOut":"2024-01-04"}`,
			useCaseErr:     bookRoom.ErrInternal,
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCase := new(mockUseCase)
			router := setupRouter(NewHandler(useCase, nopLogger{}))

			if tt.useCaseErr != nil {
				useCase.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.useCaseErr)
			}

			rec := doRequest(t, router, tt.body)
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}
