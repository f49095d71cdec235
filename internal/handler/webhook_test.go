package handler

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/oripovb/orderpay/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type UpdateProcessorMock struct {
	mock.Mock
}

func (m *UpdateProcessorMock) HandleUpdate(ctx context.Context, update entity.Update) error {
	return m.Called(ctx, update).Error(0)
}

func TestWebhook_Receive(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		prepare    func(engine *UpdateProcessorMock)
		wantStatus int
		wantBody   string
	}{
		{
			name: "событие обработано",
			body: `{"update_id":1,"message":{"message_id":10,"chat":{"id":100500},"text":"/status"}}`,
			prepare: func(engine *UpdateProcessorMock) {
				engine.On("HandleUpdate", mock.Anything, mock.Anything).Return(nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"ok":true}`,
		},
		{
			name: "ошибка обработки подтверждается, чтобы платформа не повторяла доставку",
			body: `{"update_id":2,"message":{"message_id":11,"chat":{"id":100500},"photo":[{"file_id":"f"}]}}`,
			prepare: func(engine *UpdateProcessorMock) {
				engine.On("HandleUpdate", mock.Anything, mock.Anything).Return(assert.AnError).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"ok":true}`,
		},
		{
			name:       "нечитаемое тело запроса",
			body:       "{",
			prepare:    func(engine *UpdateProcessorMock) {},
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := &UpdateProcessorMock{}
			tt.prepare(engine)
			h := NewWebhook(engine)

			resp := sendTestRequest(t, http.MethodPost, strings.NewReader(tt.body), h.Receive)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, readBody(t, resp))
			}
			engine.AssertExpectations(t)
		})
	}
}

func TestWebhook_ReceivePassesUpdate(t *testing.T) {
	engine := &UpdateProcessorMock{}
	engine.
		On("HandleUpdate", mock.Anything, mock.MatchedBy(func(update entity.Update) bool {
			return update.UpdateID == 7 &&
				update.Message != nil &&
				update.Message.Chat.ID == 100500 &&
				len(update.Message.Photo) == 1
		})).
		Return(nil).
		Once()
	h := NewWebhook(engine)

	body := `{"update_id":7,"message":{"message_id":1,"chat":{"id":100500},"photo":[{"file_id":"f","width":90,"height":90}]}}`
	resp := sendTestRequest(t, http.MethodPost, strings.NewReader(body), h.Receive)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	engine.AssertExpectations(t)
}
