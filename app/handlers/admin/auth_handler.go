package admin

import (
	"log"
	"net/http"
)

func (h *AdminHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	// Already authenticated admins go straight to the dashboard.
	if _, ok := h.gate.Authenticate(r); ok {
		http.Redirect(w, r, "/admin", http.StatusFound)
		return
	}

	_ = h.render.HTML(w, http.StatusOK, "admin/login", map[string]interface{}{
		"Title": "Вход в админ-панель",
		"Error": "",
	})
}

func (h *AdminHandler) LoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		log.Printf("LoginPost: error parsing form: %v", err)
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	if !h.verifier.Verify(username, password) {
		// Deliberately the same message for a wrong username and a wrong
		// password.
		_ = h.render.HTML(w, http.StatusUnauthorized, "admin/login", map[string]interface{}{
			"Title": "Вход в админ-панель",
			"Error": "Неверный логин или пароль",
		})
		return
	}

	if err := h.gate.SetSessionCookie(w, username); err != nil {
		log.Printf("LoginPost: failed to issue session: %v", err)
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	log.Printf("LoginPost: admin %s logged in", username)
	http.Redirect(w, r, "/admin", http.StatusFound)
}

// Logout clears the cookie. The token itself stays valid until natural
// expiry; there is no server-side revocation.
func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.gate.ClearSessionCookie(w)
	http.Redirect(w, r, "/admin/login", http.StatusFound)
}
