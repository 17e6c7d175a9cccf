package handlers

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/Ozziff/pivnoi-vopros-bot/internal/beer"
	"github.com/Ozziff/pivnoi-vopros-bot/internal/lang"
	"github.com/Ozziff/pivnoi-vopros-bot/internal/testutils"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

var errPhoto = errors.New("photo send failed")

func callbackUpdate(chatID int64, messageID int, data string) tgbotapi.Update {
	return tgbotapi.Update{
		CallbackQuery: &tgbotapi.CallbackQuery{
			ID:   "cb1",
			Data: data,
			Message: &tgbotapi.Message{
				MessageID: messageID,
				Chat:      &tgbotapi.Chat{ID: chatID},
			},
		},
	}
}

func TestTryLuckCallback(t *testing.T) {
	const seed = 42

	mock := &testutils.MockBot{}
	h := newTestHandler(mock, seed)

	h.Route(callbackUpdate(5, 10, TryLuckCallback))

	if len(mock.AnsweredCallbacks) != 1 || mock.AnsweredCallbacks[0] != "cb1" {
		t.Errorf("Expected callback cb1 answered, got %v", mock.AnsweredCallbacks)
	}

	edit := mock.GetLastEdit()
	if edit == nil {
		t.Fatal("Expected the button message to be edited")
	}
	if edit.ChatID != 5 || edit.MessageID != 10 {
		t.Errorf("Edit targeted %d/%d, expected 5/10", edit.ChatID, edit.MessageID)
	}
	if !strings.HasPrefix(edit.Text, lang.GetMessage(lang.TastingHeaderMsgID)) {
		t.Error("Tasting text should start with the header")
	}
	if !strings.Contains(edit.Text, "6. ") {
		t.Error("Tasting text should list six beers")
	}

	// The handler consumed the same seed, so replaying the draw tells us
	// which photo must have been sent.
	expected := beer.Draw(rand.New(rand.NewSource(seed)))
	wantPhoto := testConfig().SadImage
	if expected.Happy() {
		wantPhoto = testConfig().HappyImage
	}

	if len(mock.SentPhotos) != 1 {
		t.Fatalf("Expected one photo, got %d", len(mock.SentPhotos))
	}
	if mock.SentPhotos[0] != wantPhoto {
		t.Errorf("Expected photo %s, got %s", wantPhoto, mock.SentPhotos[0])
	}
}

func TestTryLuckMissingPhotoIsNotFatal(t *testing.T) {
	mock := &testutils.MockBot{SendPhotoError: errPhoto}
	h := newTestHandler(mock, 1)

	h.Route(callbackUpdate(5, 10, TryLuckCallback))

	if mock.GetLastEdit() == nil {
		t.Error("Tasting text should still be published when the photo fails")
	}
}

func TestTopicCallbacks(t *testing.T) {
	tests := []struct {
		data     string
		expected lang.MessageID
	}{
		{HistoryCallback, lang.HistoryMsgID},
		{TypesCallback, lang.TypesMsgID},
		{BrewingCallback, lang.BrewingMsgID},
		{CultureCallback, lang.CultureMsgID},
		{"nonsense", lang.TopicUnavailableMsgID},
	}

	for _, tt := range tests {
		t.Run(tt.data, func(t *testing.T) {
			mock := &testutils.MockBot{}
			h := newTestHandler(mock, 1)

			h.Route(callbackUpdate(5, 10, tt.data))

			edit := mock.GetLastEdit()
			if edit == nil {
				t.Fatal("Expected the message to be edited")
			}
			if edit.Text != lang.GetMessage(tt.expected) {
				t.Errorf("Expected %s text, got %q", tt.expected, edit.Text)
			}
			if len(mock.SentPhotos) != 0 {
				t.Error("Topic callbacks must not send photos")
			}
		})
	}
}

func TestFormatTasting(t *testing.T) {
	tasting := beer.Tasting{"Козел", beer.Zhiguli, "Крушовица", "Козел", "Козел", "Козел"}

	text := FormatTasting(tasting)

	if !strings.Contains(text, "1. Козел\n") {
		t.Errorf("Missing first entry in %q", text)
	}
	if !strings.Contains(text, "2. "+beer.Zhiguli+"\n") {
		t.Errorf("Missing zhiguli entry in %q", text)
	}
	if !strings.HasSuffix(text, lang.GetMessage(lang.TastingFooterMsgID)) {
		t.Error("Tasting text should end with the footer")
	}
}
