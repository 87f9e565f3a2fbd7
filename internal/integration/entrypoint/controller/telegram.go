package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/planify/backend/internal/application/adapter"
)

const telegramWelcomePrompt = "Siz PlanifyAI Pro yordamchisining Telegram botisiz. " +
	"Foydalanuvchi hozirgina botni ishga tushirdi (/start). Unga juda chiroyli, " +
	"qisqa (2-3 jumla) va motivatsion salomlashuv yozing va ilovani ochishini " +
	"taklif qiling. Til: O'zbekcha."

const telegramWelcomeFallback = "Xush kelibsiz! PlanifyAI bilan kuningizni samarali rejalashtiring. 🚀"

const defaultTelegramAPIBase = "https://api.telegram.org"

// TelegramController handles the Telegram bot webhook.
type TelegramController struct {
	planner  adapter.PlannerService
	botToken string
	appURL   string
	apiBase  string
	client   *http.Client
}

// NewTelegramController creates a new telegram controller instance.
func NewTelegramController(planner adapter.PlannerService, botToken, appURL string) *TelegramController {
	return NewTelegramControllerWithAPI(planner, botToken, appURL, defaultTelegramAPIBase)
}

// NewTelegramControllerWithAPI creates a telegram controller that talks to a
// custom Telegram API base URL.
func NewTelegramControllerWithAPI(planner adapter.PlannerService, botToken, appURL, apiBase string) *TelegramController {
	return &TelegramController{
		planner:  planner,
		botToken: botToken,
		appURL:   appURL,
		apiBase:  apiBase,
		client:   http.DefaultClient,
	}
}

// telegramUpdate is the subset of the Telegram update payload we read.
type telegramUpdate struct {
	Message *struct {
		Text string `json:"text"`
		Chat struct {
			ID int64 `json:"id"`
		} `json:"chat"`
	} `json:"message"`
}

// Status handles GET /telegram/webhook requests.
func (c *TelegramController) Status(ctx *gin.Context) {
	ctx.String(http.StatusOK, "Bot is active!")
}

// Webhook handles POST /telegram/webhook requests. Only /start is
// answered; everything else is acknowledged and dropped.
func (c *TelegramController) Webhook(ctx *gin.Context) {
	var update telegramUpdate
	if err := ctx.ShouldBindJSON(&update); err != nil || update.Message == nil {
		ctx.String(http.StatusOK, "OK")
		return
	}

	if update.Message.Text == "/start" {
		welcome := telegramWelcomeFallback
		if text, err := c.planner.GenerateText(ctx.Request.Context(), telegramWelcomePrompt, ""); err == nil && text != "" {
			welcome = text
		}

		if err := c.sendMessage(ctx, update.Message.Chat.ID, welcome); err != nil {
			slog.Error("Failed to send telegram welcome", "error", err)
		}
	}

	ctx.String(http.StatusOK, "OK")
}

// sendMessage posts a message with an open-app button to the Telegram API.
func (c *TelegramController) sendMessage(ctx *gin.Context, chatID int64, text string) error {
	payload := map[string]any{
		"chat_id": chatID,
		"text":    text,
		"reply_markup": map[string]any{
			"inline_keyboard": [][]map[string]any{
				{
					{
						"text":    "Ilovani ochish 🚀",
						"web_app": map[string]string{"url": c.appURL},
					},
				},
			},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", c.apiBase, c.botToken)
	req, err := http.NewRequestWithContext(ctx.Request.Context(), http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("telegram api returned status %d", resp.StatusCode)
	}
	return nil
}
