package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/denmor86/lucky-triple/internal/models"
	"github.com/denmor86/lucky-triple/internal/storage/mocks"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/mock/gomock"
)

func TestNotifications_SendToAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUsers := mocks.NewMockUsersStorage(ctrl)
	mockSMS := mocks.NewMockSMSStorage(ctrl)

	phones := make([]string, 0, 37)
	for i := 1; i <= 37; i++ {
		phones = append(phones, fmt.Sprintf("+1555000%04d", i))
	}

	mockUsers.EXPECT().GetPhones(gomock.Any(), nil).Return(phones, nil)
	mockSMS.EXPECT().AddDispatch(gomock.Any(), phones, "Maintenance tonight").
		Return(&models.SMSDispatch{ID: "d1", Phones: phones, Message: "Maintenance tonight", Status: models.SMSQueued}, nil).
		Times(1)

	d, err := NewNotifications(mockUsers, mockSMS).SendToAll(context.Background(), "Maintenance tonight")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(d.Phones) != 37 {
		t.Errorf("Expected 37 phones, got %d", len(d.Phones))
	}
}

func TestNotifications_SendToUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUsers := mocks.NewMockUsersStorage(ctrl)
	mockSMS := mocks.NewMockSMSStorage(ctrl)

	notifications := NewNotifications(mockUsers, mockSMS)

	testCases := []struct {
		Name          string
		UserIDs       []string
		Message       string
		SetupMocks    func()
		ExpectedError error
	}{
		{
			Name:    "Success. Duplicate phones collapse #1",
			UserIDs: []string{"u1", "u2", "u3"},
			Message: "Hi",
			SetupMocks: func() {
				mockUsers.EXPECT().GetPhones(gomock.Any(), []string{"u1", "u2", "u3"}).
					Return([]string{"+15550000001", "+15550000001", "+15550000002"}, nil)
				mockSMS.EXPECT().AddDispatch(gomock.Any(), []string{"+15550000001", "+15550000002"}, "Hi").
					Return(&models.SMSDispatch{ID: "d1"}, nil)
			},
		},
		{
			Name:    "Error. Only deleted users selected #2",
			UserIDs: []string{"u9"},
			Message: "Hi",
			SetupMocks: func() {
				mockUsers.EXPECT().GetPhones(gomock.Any(), []string{"u9"}).Return(nil, nil)
			},
			ExpectedError: ErrNoRecipients,
		},
		{
			Name:          "Error. Empty selection #3",
			Message:       "Hi",
			SetupMocks:    func() {},
			ExpectedError: ErrNoRecipients,
		},
		{
			Name:          "Error. Empty message #4",
			UserIDs:       []string{"u1"},
			SetupMocks:    func() {},
			ExpectedError: ErrEmptyMessage,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()
			_, err := notifications.SendToUsers(context.Background(), tc.UserIDs, tc.Message)
			if !errors.Is(err, tc.ExpectedError) {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
		})
	}
}

func TestNotifications_GetLogs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockSMS := mocks.NewMockSMSStorage(ctrl)

	logs := []models.SMSDispatch{{ID: "d2"}, {ID: "d1"}}
	mockSMS.EXPECT().GetDispatches(gomock.Any(), SMSLogLimit).Return(logs, nil)

	got, err := NewNotifications(mocks.NewMockUsersStorage(ctrl), mockSMS).GetLogs(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if diff := cmp.Diff(logs, got); diff != "" {
		t.Errorf("Logs mismatch (-want +got):\n%s", diff)
	}
}
