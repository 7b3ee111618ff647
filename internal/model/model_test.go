// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// KIND TESTS
// =============================================================================

func TestKind_DisplayName(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindUser, "You"},
		{KindResponse, "Forecast AI"},
		{Kind("other"), "other"},
	}

	for _, tc := range tests {
		if got := tc.kind.DisplayName(); got != tc.want {
			t.Errorf("Kind(%q).DisplayName() = %q, want %q", tc.kind, got, tc.want)
		}
	}
}

func TestNewMessage_AssignsUniqueIDs(t *testing.T) {
	a := NewUserMessage("one")
	b := NewUserMessage("one")

	require.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, KindUser, a.Kind)
	assert.False(t, a.CreatedAt.IsZero())
}

// =============================================================================
// MESSAGE LIST TESTS
// =============================================================================

func TestNewMessageList_SeedsWelcome(t *testing.T) {
	l := NewMessageList()

	require.Equal(t, 1, l.Len())
	first := l.Messages()[0]
	assert.Equal(t, KindResponse, first.Kind)
	assert.Equal(t, WelcomeText, first.Text)
}

func TestMessageList_AppendPreservesOrder(t *testing.T) {
	l := NewMessageList()
	texts := []string{"a", "b", "a", "c"}
	for _, s := range texts {
		l.Append(NewUserMessage(s))
	}

	msgs := l.Messages()
	require.Len(t, msgs, 1+len(texts))
	for i, s := range texts {
		assert.Equal(t, s, msgs[i+1].Text, "index %d", i+1)
	}
}

func TestMessageList_ProjectionIsReadOnly(t *testing.T) {
	l := NewMessageList()
	l.Append(NewUserMessage("hello"))

	msgs := l.Messages()
	msgs[1].Text = "mutated"
	msgs = append(msgs, NewUserMessage("extra"))

	assert.Equal(t, 2, l.Len())
	assert.Equal(t, "hello", l.Messages()[1].Text)
}

func TestMessageList_RevisionBumpsOnAppend(t *testing.T) {
	l := NewMessageList()
	before := l.Revision()

	l.Append(NewUserMessage("x"))
	l.Append(NewResponseMessage("y"))

	assert.Equal(t, before+2, l.Revision())
}

func TestMessageList_LastOfKind(t *testing.T) {
	l := NewMessageList()
	l.Append(NewUserMessage("question"))

	last, ok := l.LastOfKind(KindResponse)
	require.True(t, ok)
	assert.Equal(t, WelcomeText, last.Text)

	last, ok = l.Last()
	require.True(t, ok)
	assert.Equal(t, "question", last.Text)
}

// =============================================================================
// COMPOSER TESTS
// =============================================================================

func TestComposer_SubmitClearsBuffer(t *testing.T) {
	inputs := []string{"hello", "  padded  ", "multi\nline", "ünïcödé"}

	for _, in := range inputs {
		c := NewComposer()
		c.SetText(in)

		msg, ok := c.Submit()
		require.True(t, ok, "input %q", in)
		assert.Equal(t, KindUser, msg.Kind)
		assert.Equal(t, "", c.Text(), "buffer must be empty after submit")
	}
}

func TestComposer_SubmitKeepsTextVerbatim(t *testing.T) {
	c := NewComposer()
	c.SetText("  spaced out  ")

	msg, ok := c.Submit()
	require.True(t, ok)
	assert.Equal(t, "  spaced out  ", msg.Text)
}

func TestComposer_SubmitNormalizesNFC(t *testing.T) {
	c := NewComposer()
	c.SetText("e\u0301") // e + combining acute

	msg, ok := c.Submit()
	require.True(t, ok)
	assert.Equal(t, "\u00e9", msg.Text)
}

func TestComposer_EmptySubmitIsNoop(t *testing.T) {
	for _, in := range []string{"", " ", "   ", "\t\n"} {
		c := NewComposer()
		c.SetText(in)

		_, ok := c.Submit()
		assert.False(t, ok, "input %q", in)
		assert.Equal(t, in, c.Text(), "buffer must be untouched")
		assert.True(t, c.IsEmpty())
	}
}
