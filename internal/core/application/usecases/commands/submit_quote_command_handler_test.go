package commands_test

import (
	"errors"
	"strings"
	"testing"

	"booking/internal/core/application/usecases/commands"
	"booking/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSubmitQuoteCommandHandler_Handle_NewQuote(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewSessionID()
	cmd, err := commands.NewSubmitQuoteCommand(id, validQuoteRequest(), "")
	require.NoError(t, err)

	quotes := new(MockQuoteRepository)
	session := new(MockCartSession)
	factory := new(MockCartSessionFactory)
	factory.On("Create", id).Return(session).Once()
	session.On("QuoteRepository").Return(quotes)
	mock.InOrder(
		session.On("Begin", ctx).Return(nil).Once(),
		quotes.On("SaveLatest", ctx, mock.AnythingOfType("*quote.Quote")).Return(nil).Once(),
		session.On("End", ctx).Once(),
	)

	q, err := commands.NewSubmitQuoteCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(q.ID(), "QT"))
	assert.Len(t, q.ID(), 14)
	assert.False(t, q.IsUpdated())
	quotes.AssertExpectations(t)
	session.AssertExpectations(t)
}

func TestSubmitQuoteCommandHandler_Handle_EditKeepsID(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewSessionID()
	cmd, _ := commands.NewSubmitQuoteCommand(id, validQuoteRequest(), "QT12345678WXYZ")

	quotes := new(MockQuoteRepository)
	session := new(MockCartSession)
	factory := new(MockCartSessionFactory)
	factory.On("Create", id).Return(session).Once()
	session.On("QuoteRepository").Return(quotes)
	session.On("Begin", ctx).Return(nil).Once()
	session.On("End", ctx).Once()
	quotes.On("SaveLatest", ctx, mock.Anything).Return(nil).Once()

	q, err := commands.NewSubmitQuoteCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "QT12345678WXYZ", q.ID())
	assert.True(t, q.IsUpdated())
}

func TestSubmitQuoteCommandHandler_Handle_SaveError(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewSessionID()
	cmd, _ := commands.NewSubmitQuoteCommand(id, validQuoteRequest(), "")

	quotes := new(MockQuoteRepository)
	session := new(MockCartSession)
	factory := new(MockCartSessionFactory)
	factory.On("Create", id).Return(session).Once()
	session.On("QuoteRepository").Return(quotes)
	session.On("Begin", ctx).Return(nil).Once()
	session.On("End", ctx).Once()
	quotes.On("SaveLatest", ctx, mock.Anything).Return(errors.New("save error")).Once()

	q, err := commands.NewSubmitQuoteCommandHandler(factory).Handle(ctx, cmd)

	require.Error(t, err)
	assert.Nil(t, q)
	session.AssertExpectations(t)
}
