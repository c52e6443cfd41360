package service_test

import (
	"context"
	"testing"

	"github.com/VladPetriv/currency_exchange/internal/model"
	"github.com/VladPetriv/currency_exchange/internal/service"
	"github.com/VladPetriv/currency_exchange/internal/service/mocks"
	"github.com/VladPetriv/currency_exchange/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testMessage struct {
	updateID   int
	chatID     int
	text       string
	callbackID string
}

func (m testMessage) GetUpdateID() int      { return m.updateID }
func (m testMessage) GetChatID() int        { return m.chatID }
func (m testMessage) GetText() string       { return m.text }
func (m testMessage) GetSenderName() string { return "tester" }
func (m testMessage) GetCallbackID() string { return m.callbackID }

func TestState_HandleState(t *testing.T) {
	t.Parallel()

	const chatID = 42

	unfinishedState := func() *model.State {
		return &model.State{
			ID:     "unfinished",
			ChatID: chatID,
			Flow:   model.CreateCurrencyFlow,
			Steps:  model.FlowSteps{model.StartFlowStep, model.EnterCurrencyCodeFlowStep},
		}
	}
	finishedState := func() *model.State {
		return &model.State{
			ID:     "finished",
			ChatID: chatID,
			Flow:   model.ListCurrenciesFlow,
			Steps:  model.FlowSteps{model.StartFlowStep, model.EndFlowStep},
		}
	}

	testCases := [...]struct {
		desc            string
		text            string
		storedState     *model.State
		expectDelete    string
		expectCreate    bool
		expectedMessage string
		expectNilOutput bool
		expectedEvent   model.Event
		expectedFlow    model.Flow
	}{
		{
			desc:          "new state created for command without state",
			text:          model.BotConvertCommand,
			expectCreate:  true,
			expectedEvent: model.ConvertEvent,
			expectedFlow:  model.ConvertFlow,
		},
		{
			desc:          "unknown text without state",
			text:          "hello",
			expectedEvent: model.UnknownEvent,
		},
		{
			desc:          "finished state replaced by new command",
			text:          model.BotCreateCurrencyCommand,
			storedState:   finishedState(),
			expectDelete:  "finished",
			expectCreate:  true,
			expectedEvent: model.CreateCurrencyEvent,
			expectedFlow:  model.CreateCurrencyFlow,
		},
		{
			desc:          "unknown text after finished flow",
			text:          "hello",
			storedState:   finishedState(),
			expectedEvent: model.UnknownEvent,
		},
		{
			desc:          "text continues unfinished flow",
			text:          "UAH",
			storedState:   unfinishedState(),
			expectedEvent: model.CreateCurrencyEvent,
			expectedFlow:  model.CreateCurrencyFlow,
		},
		{
			desc:          "cancel interrupts unfinished flow",
			text:          model.BotCancelCommand,
			storedState:   unfinishedState(),
			expectDelete:  "unfinished",
			expectCreate:  true,
			expectedEvent: model.CancelEvent,
			expectedFlow:  model.CancelFlow,
		},
		{
			desc:          "exchange rates list interrupts unfinished flow",
			text:          model.BotExchangeRatesCommand,
			storedState:   unfinishedState(),
			expectDelete:  "unfinished",
			expectCreate:  true,
			expectedEvent: model.ListExchangeRatesEvent,
			expectedFlow:  model.ListExchangeRatesFlow,
		},
		{
			desc:            "command during unfinished flow is rejected",
			text:            model.BotConvertCommand,
			storedState:     unfinishedState(),
			expectedMessage: "Your previous flow(Create currency) is not finished. Please, finish it or cancel it before running new one.",
			expectNilOutput: true,
		},
		{
			desc:            "edit button during unfinished flow is rejected",
			text:            model.NewEditExchangeRateCallback(model.Pair{Base: "USD", Target: "EUR"}),
			storedState:     unfinishedState(),
			expectedMessage: "Your previous flow(Create currency) is not finished. Please, finish it or cancel it before running new one.",
			expectNilOutput: true,
		},
		{
			desc:          "edit button starts update flow",
			text:          model.NewEditExchangeRateCallback(model.Pair{Base: "USD", Target: "EUR"}),
			storedState:   finishedState(),
			expectDelete:  "finished",
			expectCreate:  true,
			expectedEvent: model.UpdateExchangeRateEvent,
			expectedFlow:  model.UpdateExchangeRateFlow,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background() //nolint: forbidigo

			stateStore := mocks.NewStateStore(t)
			messenger := mocks.NewMessenger(t)

			stateStore.On("Get", mock.Anything, service.GetStateFilter{ChatID: chatID}).Return(tc.storedState, nil).Once()
			if tc.expectDelete != "" {
				stateStore.On("Delete", mock.Anything, tc.expectDelete).Return(nil).Once()
			}
			if tc.expectCreate {
				stateStore.On("Create", mock.Anything, mock.MatchedBy(func(state *model.State) bool {
					return state.ChatID == chatID &&
						state.Flow == tc.expectedFlow &&
						state.GetCurrentStep() == model.StartFlowStep
				})).Return(nil).Once()
			}
			if tc.expectedMessage != "" {
				messenger.On("SendMessage", chatID, tc.expectedMessage).Return(nil).Once()
			}

			stateService := service.NewState(&service.StateOptions{
				Logger: logger.Nop(),
				Stores: service.Stores{State: stateStore},
				APIs:   service.APIs{Messenger: messenger},
			})

			output, err := stateService.HandleState(ctx, testMessage{chatID: chatID, text: tc.text})
			require.NoError(t, err)

			if tc.expectNilOutput {
				assert.Nil(t, output)
				return
			}

			require.NotNil(t, output)
			assert.Equal(t, tc.expectedEvent, output.Event)
			if tc.expectedFlow == "" {
				assert.Nil(t, output.State)
				return
			}

			require.NotNil(t, output.State)
			assert.Equal(t, tc.expectedFlow, output.State.Flow)
		})
	}
}

func TestState_DeleteState(t *testing.T) {
	t.Parallel()

	ctx := context.Background() //nolint: forbidigo

	t.Run("existing state deleted", func(t *testing.T) {
		t.Parallel()

		stateStore := mocks.NewStateStore(t)
		stateStore.On("Get", mock.Anything, service.GetStateFilter{ChatID: 1}).
			Return(&model.State{ID: "state", ChatID: 1, Flow: model.ConvertFlow}, nil).Once()
		stateStore.On("Delete", mock.Anything, "state").Return(nil).Once()

		stateService := service.NewState(&service.StateOptions{
			Logger: logger.Nop(),
			Stores: service.Stores{State: stateStore},
		})

		err := stateService.DeleteState(ctx, testMessage{chatID: 1})
		assert.NoError(t, err)
	})

	t.Run("missing state ignored", func(t *testing.T) {
		t.Parallel()

		stateStore := mocks.NewStateStore(t)
		stateStore.On("Get", mock.Anything, service.GetStateFilter{ChatID: 2}).Return(nil, nil).Once()

		stateService := service.NewState(&service.StateOptions{
			Logger: logger.Nop(),
			Stores: service.Stores{State: stateStore},
		})

		err := stateService.DeleteState(ctx, testMessage{chatID: 2})
		assert.NoError(t, err)
	})
}
