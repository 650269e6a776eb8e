package router

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/aliskhannn/task-notifier/internal/api/handlers/notification"
	"github.com/aliskhannn/task-notifier/internal/middlewares"
	mocks "github.com/aliskhannn/task-notifier/internal/mocks/api/handlers/notification"
	"github.com/aliskhannn/task-notifier/internal/model"
)

func TestRouter_Routes(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMocknotificationService(ctrl)
	hub := mocks.NewMocksubscriber(ctrl)

	e := New(notification.NewHandler(svc, hub, validator.New()), nil)

	svc.EXPECT().GetAllNotifications(gomock.Any(), "u1").Return([]model.Notification{}, nil)
	svc.EXPECT().MarkAsRead(gomock.Any(), int64(4)).Return(nil)
	svc.EXPECT().
		CreateNotification(gomock.Any(), "u2", nil, "hi", "", model.TopicGeneral).
		Return(model.Notification{ID: 1}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/notifications", nil)
	req.Header.Set(middlewares.UserIDHeader, "u1")
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodPatch, "/api/notifications/4/read", nil)
	req.Header.Set(middlewares.UserIDHeader, "u1")
	w = httptest.NewRecorder()
	e.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	body := `{"user_id":"u2","message":"hi","type":"general-notification"}`
	req = httptest.NewRequest(http.MethodPost, "/api/notifications", bytes.NewBufferString(body))
	w = httptest.NewRecorder()
	e.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestRouter_RequiresIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)

	e := New(notification.NewHandler(mocks.NewMocknotificationService(ctrl), mocks.NewMocksubscriber(ctrl), validator.New()), nil)

	for _, target := range []string{"/api/notifications", "/ws/notifications"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, target)
	}
}
