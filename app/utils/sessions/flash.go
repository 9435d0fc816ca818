package sessions

import (
	"log"
	"net/http"

	"github.com/gorilla/sessions"
)

const flashSessionName = "shop-flash"

// FlashStore carries one-shot status messages between an admin mutation
// and the listing it redirects back to.
type FlashStore struct {
	store *sessions.CookieStore
}

func NewFlashStore(secret string) *FlashStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/admin",
		MaxAge:   300,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &FlashStore{store: store}
}

func (f *FlashStore) Add(w http.ResponseWriter, r *http.Request, message string) {
	session, err := f.store.Get(r, flashSessionName)
	if err != nil {
		log.Printf("FlashStore: error getting session: %v", err)
	}
	session.AddFlash(message)
	if err := session.Save(r, w); err != nil {
		log.Printf("FlashStore: error saving flash: %v", err)
	}
}

// Pop returns the pending messages and clears them.
func (f *FlashStore) Pop(w http.ResponseWriter, r *http.Request) []string {
	session, err := f.store.Get(r, flashSessionName)
	if err != nil {
		return nil
	}
	flashes := session.Flashes()
	if len(flashes) == 0 {
		return nil
	}
	if err := session.Save(r, w); err != nil {
		log.Printf("FlashStore: error clearing flashes: %v", err)
	}

	messages := make([]string, 0, len(flashes))
	for _, flash := range flashes {
		if msg, ok := flash.(string); ok {
			messages = append(messages, msg)
		}
	}
	return messages
}
