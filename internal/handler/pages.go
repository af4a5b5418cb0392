package handler

import (
	"context"
	"html/template"
	"net/http"

	"github.com/N1ghtSe7en/hellomint-main/internal/common"
	"github.com/N1ghtSe7en/hellomint-main/internal/model"
	"github.com/N1ghtSe7en/hellomint-main/internal/session"
	"github.com/N1ghtSe7en/hellomint-main/internal/web"
	"github.com/N1ghtSe7en/hellomint-main/near"

	"go.uber.org/zap"
)

// alertSomethingWrong is shown to the user when the mint call fails. The
// underlying error goes to the log.
const alertSomethingWrong = "Something went wrong! Maybe you need to sign out and back in? Check the server logs for more info."

// Minter is the contract-side surface the pages need. near.Service
// implements it; tests use fakes.
type Minter interface {
	ContractID() string
	InFlight() bool
	Mint(ctx context.Context, receiverID string) (*model.MintResponse, error)
	Balance(ctx context.Context, accountID string) (*model.BalanceResponse, error)
}

// PageHandler renders the server-side views: the sign-in gate and the mint
// form.
type PageHandler struct {
	connector     session.Connector
	minter        Minter
	notifications *session.NotificationStore
	networkID     string
	tmpl          *template.Template
}

// NewPageHandler creates a PageHandler over the given connector and minter.
func NewPageHandler(connector session.Connector, minter Minter, notifications *session.NotificationStore, networkID string) (*PageHandler, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}
	return &PageHandler{
		connector:     connector,
		minter:        minter,
		notifications: notifications,
		networkID:     networkID,
		tmpl:          tmpl,
	}, nil
}

type notificationView struct {
	TokenID     string
	Title       string
	ReceiverID  string
	AccountURL  string
	ContractURL string
}

type mintView struct {
	AccountID    string
	ContractID   string
	Balance      *model.BalanceResponse
	Alert        string
	InFlight     bool
	Notification *notificationView
}

// Index handles GET /. On each request the connector's signed-in predicate
// decides which view renders: the sign-in gate or the mint form.
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	if !h.connector.SignedIn(r) {
		h.render(w, "signin", nil)
		return
	}

	h.renderMint(w, r, "")
}

// Login handles POST /login
func (h *PageHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	if err := h.connector.Login(w, r); err != nil {
		zap.L().With(zap.Error(err)).Error("login failed")
		http.Error(w, "sign-in failed", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout handles POST /logout
func (h *PageHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	if token, ok := session.Token(r); ok {
		h.notifications.Clear(token)
	}
	h.connector.Logout(w, r)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Mint handles POST /mint, the single form-submit of the app. On success
// the notification banner is armed and the client is redirected back to the
// index; on failure the mint view renders again with a user-facing alert
// while the error goes to the log.
func (h *PageHandler) Mint(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	if !h.connector.SignedIn(r) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	accountID := h.connector.AccountID(r)
	resp, err := h.minter.Mint(r.Context(), accountID)
	if err != nil {
		zap.L().With(
			zap.Error(err),
			zap.String("accountId", accountID),
		).Error("mint failed")
		h.renderMint(w, r, alertSomethingWrong)
		return
	}

	title := ""
	if resp.Token.Metadata != nil && resp.Token.Metadata.Title != nil {
		title = *resp.Token.Metadata.Title
	}
	if token, ok := session.Token(r); ok {
		h.notifications.Put(token, &model.Notification{
			TokenID:    resp.Token.TokenID,
			Title:      title,
			ReceiverID: resp.Token.OwnerID,
		})
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// AccountQR handles GET /qr.png
func (h *PageHandler) AccountQR(w http.ResponseWriter, r *http.Request) {
	accountID := h.connector.AccountID(r)
	if accountID == "" {
		http.NotFound(w, r)
		return
	}

	png, err := near.AccountQRCode(accountID)
	if err != nil {
		zap.L().With(zap.Error(err)).Error("failed to render QR code")
		http.Error(w, "failed to render QR code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

func (h *PageHandler) renderMint(w http.ResponseWriter, r *http.Request, alert string) {
	accountID := h.connector.AccountID(r)

	view := &mintView{
		AccountID:  accountID,
		ContractID: h.minter.ContractID(),
		Alert:      alert,
		InFlight:   h.minter.InFlight(),
	}

	// Balance is decoration, the page still renders without it
	if balance, err := h.minter.Balance(r.Context(), accountID); err == nil {
		view.Balance = balance
	} else {
		zap.L().With(zap.Error(err)).Warn("failed to fetch balance")
	}

	if token, ok := session.Token(r); ok {
		if n, visible := h.notifications.Get(token); visible {
			view.Notification = &notificationView{
				TokenID:     n.TokenID,
				Title:       n.Title,
				ReceiverID:  n.ReceiverID,
				AccountURL:  common.ExplorerAccountURL(h.networkID, n.ReceiverID),
				ContractURL: common.ExplorerAccountURL(h.networkID, h.minter.ContractID()),
			}
		}
	}

	h.render(w, "mint", view)
}

func (h *PageHandler) render(w http.ResponseWriter, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, name, data); err != nil {
		zap.L().With(zap.Error(err), zap.String("template", name)).Error("failed to render template")
	}
}
