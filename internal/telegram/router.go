// Package telegram is the bot front-end: send a car photo, get the
// bilingual analysis back.
package telegram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/kozuong/Car-AI/internal/analyze"
	"github.com/kozuong/Car-AI/internal/imageproc"
)

const analyzeTimeout = 180 * time.Second

type Router struct {
	Bot      *tgbotapi.BotAPI
	Pipeline *analyze.Pipeline
	Encoder  *imageproc.Encoder
}

func NewRouter(bot *tgbotapi.BotAPI, p *analyze.Pipeline, enc *imageproc.Encoder) *Router {
	return &Router{Bot: bot, Pipeline: p, Encoder: enc}
}

// Run consumes updates until the channel closes.
func (r *Router) Run() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	for update := range r.Bot.GetUpdatesChan(u) {
		go r.handle(update)
	}
}

func (r *Router) handle(update tgbotapi.Update) {
	msg := update.Message
	if msg == nil {
		return
	}
	switch {
	case len(msg.Photo) > 0:
		r.analyzePhoto(*msg)
	case msg.IsCommand():
		r.command(*msg)
	default:
		r.send(msg.Chat.ID, "Gửi một ảnh xe để phân tích. / Send a car photo to analyze.")
	}
}

func (r *Router) command(msg tgbotapi.Message) {
	switch msg.Command() {
	case "start", "help":
		r.send(msg.Chat.ID,
			"Gửi ảnh một chiếc xe và bot sẽ trả về thông tin chi tiết bằng tiếng Việt và tiếng Anh.\n"+
				"Send a photo of a car and the bot replies with a bilingual analysis.")
	default:
		r.send(msg.Chat.ID, "Lệnh không hợp lệ. Dùng /help.")
	}
}

func (r *Router) analyzePhoto(msg tgbotapi.Message) {
	cid := msg.Chat.ID
	r.send(cid, "Đang xử lý... / Processing...")

	ph := msg.Photo[len(msg.Photo)-1]
	file, err := r.Bot.GetFile(tgbotapi.FileConfig{FileID: ph.FileID})
	if err != nil {
		r.sendError(cid, err)
		return
	}
	raw, err := download(fmt.Sprintf("https://api.telegram.org/file/bot%s/%s", r.Bot.Token, file.FilePath))
	if err != nil {
		r.sendError(cid, err)
		return
	}

	encoded, mime, err := r.Encoder.Encode(raw)
	if err != nil {
		r.send(cid, "Lỗi xử lý ảnh. Vui lòng thử lại.")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), analyzeTimeout)
	defer cancel()

	result, err := r.Pipeline.Analyze(ctx, encoded, mime)
	if err != nil {
		var incomplete *analyze.ExtractionIncompleteError
		if errors.As(err, &incomplete) {
			r.send(cid, "Không nhận diện được hãng/mẫu xe. Vui lòng thử lại với ảnh rõ hơn.")
			return
		}
		r.sendError(cid, err)
		return
	}

	r.send(cid, FormatRecord(result.VI))
	r.send(cid, FormatRecord(result.EN))
}

func (r *Router) send(chatID int64, text string) {
	if _, err := r.Bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Printf("[telegram] send: %v", err)
	}
}

func (r *Router) sendError(chatID int64, err error) {
	log.Printf("[telegram] chat %d: %v", chatID, err)
	r.send(chatID, "Không thể phân tích ảnh. Vui lòng thử lại.")
}

func download(url string) ([]byte, error) {
	cl := &http.Client{Timeout: 60 * time.Second}
	resp, err := cl.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, string(b))
	}
	return io.ReadAll(resp.Body)
}
