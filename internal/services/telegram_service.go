package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gorkemserezli/oxiva-sub001/internal/models"
)

// TelegramService sends admin notifications. Unconfigured instances are
// silent no-ops; delivery failures are logged, never fatal.
type TelegramService struct {
	botToken    string
	adminChatID string
}

// NewTelegramService creates a new TelegramService.
func NewTelegramService(botToken, adminChatID string) *TelegramService {
	return &TelegramService{
		botToken:    botToken,
		adminChatID: adminChatID,
	}
}

type telegramMessage struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// SendMessage sends a message to the specified chat.
func (s *TelegramService) SendMessage(chatID, text string) error {
	if s.botToken == "" {
		return nil
	}

	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", s.botToken)

	msg := telegramMessage{
		ChatID:    chatID,
		Text:      text,
		ParseMode: "HTML",
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		log.Printf("[Telegram] Failed to send message: %v", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[Telegram] Unexpected status: %d", resp.StatusCode)
		return fmt.Errorf("telegram returned status %d", resp.StatusCode)
	}

	return nil
}

// SendToAdmin sends a message to the admin chat.
func (s *TelegramService) SendToAdmin(text string) error {
	if s.adminChatID == "" {
		return nil
	}
	return s.SendMessage(s.adminChatID, text)
}

// NotifyNewOrder announces a fresh checkout in the admin chat.
func (s *TelegramService) NotifyNewOrder(order *models.Order) error {
	if order == nil {
		return nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🛒 <b>Yeni sipariş: %s</b>\n", order.OrderNumber)
	fmt.Fprintf(&b, "👤 %s — %s\n", order.DeliveryName, order.DeliveryPhone)
	fmt.Fprintf(&b, "📍 %s / %s\n", order.DeliveryCity, order.DeliveryDistrict)
	for _, item := range order.Items {
		fmt.Fprintf(&b, "• %s x%d — %s\n", item.ProductName, item.Quantity, FormatPrice(item.LineTotal))
	}
	fmt.Fprintf(&b, "💰 Toplam: %s (%s)", FormatPrice(order.Total), order.PaymentMethod)

	return s.SendToAdmin(b.String())
}

// NotifyPaymentCompleted announces a settled payment in the admin chat.
func (s *TelegramService) NotifyPaymentCompleted(orderNumber string, total float64) error {
	text := fmt.Sprintf("✅ <b>Ödeme alındı: %s</b>\n💰 %s", orderNumber, FormatPrice(total))
	return s.SendToAdmin(text)
}

// FormatPrice formats a TRY amount with thousand separators.
func FormatPrice(amount float64) string {
	intAmount := int64(amount)
	str := fmt.Sprintf("%d", intAmount)

	var result strings.Builder
	length := len(str)
	for i, digit := range str {
		if i > 0 && (length-i)%3 == 0 {
			result.WriteString(".")
		}
		result.WriteRune(digit)
	}

	cents := int64(amount*100) % 100
	if cents < 0 {
		cents = -cents
	}
	fmt.Fprintf(&result, ",%02d TL", cents)
	return result.String()
}
