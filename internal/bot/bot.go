package bot

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"gorm.io/gorm"

	"time-tracker/internal/config"
	"time-tracker/internal/model"
	"time-tracker/internal/repository"
	"time-tracker/internal/service"
)

type conversationStage int

const (
	stageNone conversationStage = iota
	stageTitle
	stageLabel
	stageStart
	stageDuration
	stageCompleted
)

const (
	cbCompletePrefix = "complete:"
	cbReopenPrefix   = "reopen:"
	cbDeletePrefix   = "delete:"
)

const (
	btnSkip         = "⏭️ Skip"
	btnYes          = "Yes"
	btnNo           = "No"
	btnNow          = "🕒 Now"
	btnCancelDialog = "⏪ Cancel"
	noLabel         = "no label"
	menuLabelTrack  = "➕ Track time"
	menuLabelEvents = "📋 Events"
	menuLabelStats  = "📊 Stats"
	menuLabelHelp   = "ℹ️ Help"
)

const startInputLayout = "2006-01-02 15:04"

type conversationState struct {
	stage conversationStage
	input service.EventInput
}

// Bot aggregates the Telegram API with services.
type Bot struct {
	api           *tgbotapi.BotAPI
	userRepo      *repository.UserRepository
	bucketRepo    *repository.BucketRepository
	labelSvc      *service.LabelService
	eventSvc      *service.EventService
	statsSvc      *service.StatsService
	reportSvc     *service.ReportService
	config        *config.Config
	conversations map[int64]*conversationState
	mu            sync.Mutex
}

func New(token string, userRepo *repository.UserRepository, bucketRepo *repository.BucketRepository,
	labelSvc *service.LabelService, eventSvc *service.EventService, statsSvc *service.StatsService,
	reportSvc *service.ReportService, cfg *config.Config) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create bot api: %w", err)
	}

	log.Printf("[info] bot authorized on account %s", api.Self.UserName)

	return &Bot{
		api:           api,
		userRepo:      userRepo,
		bucketRepo:    bucketRepo,
		labelSvc:      labelSvc,
		eventSvc:      eventSvc,
		statsSvc:      statsSvc,
		reportSvc:     reportSvc,
		config:        cfg,
		conversations: make(map[int64]*conversationState),
	}, nil
}

// Start begins polling updates until ctx is cancelled.
func (b *Bot) Start(ctx context.Context) error {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60
	updates := b.api.GetUpdatesChan(updateConfig)

	log.Println("[info] start polling updates")

	go func() {
		<-ctx.Done()
		b.api.StopReceivingUpdates()
	}()

	for update := range updates {
		switch {
		case update.CallbackQuery != nil:
			if err := b.handleCallback(ctx, update.CallbackQuery); err != nil {
				log.Printf("handle callback: %v", err)
			}
		case update.Message != nil:
			if update.Message.Chat == nil || !update.Message.Chat.IsPrivate() {
				continue
			}
			if err := b.handleMessage(ctx, update.Message); err != nil {
				log.Printf("handle message: %v", err)
			}
		}
	}

	return nil
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) error {
	if msg.From == nil {
		return nil
	}

	if !msg.IsCommand() && msg.Text == btnCancelDialog {
		b.clearConversation(msg.From.ID)
		return b.sendText(msg.Chat.ID, "⏪ Tracking dialog cancelled.")
	}

	if !msg.IsCommand() {
		if handled, err := b.handleMenuAlias(ctx, msg); handled {
			return err
		}
	}

	if msg.IsCommand() {
		log.Printf("[info] command from %d: /%s %s", msg.From.ID, msg.Command(), msg.CommandArguments())
		return b.handleCommand(ctx, msg)
	}

	if b.hasConversation(msg.From.ID) {
		return b.handleConversation(ctx, msg)
	}

	return b.sendText(msg.Chat.ID, "I didn't get that. Use /track to log time or /help for the command list.")
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) error {
	switch msg.Command() {
	case "start":
		return b.handleStart(ctx, msg)
	case "help":
		return b.handleHelp(msg)
	case "track":
		return b.startTrackConversation(ctx, msg)
	case "events":
		return b.handleListEvents(ctx, msg)
	case "complete":
		return b.handleSetCompleted(ctx, msg, true)
	case "reopen":
		return b.handleSetCompleted(ctx, msg, false)
	case "delete":
		return b.handleDelete(ctx, msg)
	case "labels":
		return b.handleLabels(ctx, msg)
	case "stats":
		return b.handleStats(ctx, msg)
	case "timezone":
		return b.handleTimezone(ctx, msg)
	case "report":
		return b.handleReport(ctx, msg)
	case "cancel":
		b.clearConversation(msg.From.ID)
		return b.sendText(msg.Chat.ID, "⏪ Cancelled.")
	default:
		return b.sendText(msg.Chat.ID, "Unknown command. See /help.")
	}
}

func (b *Bot) handleStart(ctx context.Context, msg *tgbotapi.Message) error {
	user, err := b.ensureUser(ctx, msg.From)
	if err != nil {
		return err
	}
	text := fmt.Sprintf("👋 Hi, %s!\nI keep running totals of your tracked time per label: today, this week, this month and more.\nYour timezone is <b>%s</b> (change with /timezone).\nStart with /track.",
		escape(user.FirstName), escape(user.Timezone))
	return b.sendWithReplyMarkup(msg.Chat.ID, text, mainMenuKeyboard())
}

func (b *Bot) handleHelp(msg *tgbotapi.Message) error {
	text := strings.Join([]string{
		"⏱ <b>Commands</b>",
		"/track — log a tracked interval",
		"/events — recent events with quick actions",
		"/complete &lt;id&gt; — mark an event done",
		"/reopen &lt;id&gt; — undo a completion",
		"/delete &lt;id&gt; — remove an event",
		"/labels — your labels",
		"/stats [label] — minutes today / this week / last week / this month / last month / all time",
		"/timezone &lt;IANA zone&gt; — e.g. /timezone Europe/Berlin",
		"/report — today's summary for every label",
	}, "\n")
	return b.sendText(msg.Chat.ID, text)
}

func (b *Bot) startTrackConversation(ctx context.Context, msg *tgbotapi.Message) error {
	if _, err := b.ensureUser(ctx, msg.From); err != nil {
		return err
	}
	b.setConversation(msg.From.ID, &conversationState{stage: stageTitle})
	return b.sendWithReplyMarkup(msg.Chat.ID, "📝 What did you work on?", cancelKeyboard())
}

func (b *Bot) handleConversation(ctx context.Context, msg *tgbotapi.Message) error {
	state := b.getConversation(msg.From.ID)
	if state == nil {
		return nil
	}

	user, err := b.ensureUser(ctx, msg.From)
	if err != nil {
		return err
	}
	loc, err := user.Location()
	if err != nil {
		return fmt.Errorf("load timezone %q: %w", user.Timezone, err)
	}

	text := strings.TrimSpace(msg.Text)

	switch state.stage {
	case stageTitle:
		if text == "" {
			return b.sendText(msg.Chat.ID, "Title can't be empty, try again.")
		}
		state.input.Title = text
		state.stage = stageLabel
		return b.sendWithReplyMarkup(msg.Chat.ID, "🏷 Which label? (or skip)", skipKeyboard())
	case stageLabel:
		if text != btnSkip {
			state.input.Label = text
		}
		state.stage = stageStart
		return b.sendWithReplyMarkup(msg.Chat.ID,
			fmt.Sprintf("🕒 When did it start? Send <code>%s</code> or press Now.", startInputLayout), nowKeyboard())
	case stageStart:
		if text == btnNow {
			state.input.StartAt = time.Now().In(loc)
		} else {
			start, err := time.ParseInLocation(startInputLayout, text, loc)
			if err != nil {
				return b.sendText(msg.Chat.ID, fmt.Sprintf("Can't parse that, expected <code>%s</code>.", startInputLayout))
			}
			state.input.StartAt = start
		}
		state.stage = stageDuration
		return b.sendWithReplyMarkup(msg.Chat.ID, "⏳ How many minutes?", cancelKeyboard())
	case stageDuration:
		minutes, err := strconv.Atoi(text)
		if err != nil {
			return b.sendText(msg.Chat.ID, "Minutes must be a number, try again.")
		}
		state.input.DurationMinutes = minutes
		state.stage = stageCompleted
		return b.sendWithReplyMarkup(msg.Chat.ID, "✅ Already finished?", yesNoKeyboard())
	case stageCompleted:
		state.input.Completed = text == btnYes
		b.clearConversation(msg.From.ID)
		return b.finishTracking(ctx, user, state.input, msg.Chat.ID, loc)
	default:
		b.clearConversation(msg.From.ID)
		return nil
	}
}

func (b *Bot) finishTracking(ctx context.Context, user *model.User, input service.EventInput, chatID int64, loc *time.Location) error {
	event, err := b.eventSvc.CreateEvent(ctx, user, input, time.Now().In(loc))
	if err != nil {
		log.Printf("create event: %v", err)
		return b.sendWithReplyMarkup(chatID, "⚠️ Couldn't save the event, try again.", mainMenuKeyboard())
	}

	labelText := noLabel
	if input.Label != "" {
		labelText = input.Label
	}
	status := "open"
	if event.IsCompleted {
		status = "completed, counted into your totals"
	}
	text := fmt.Sprintf("✅ Saved <b>%s</b> (%s, %s) — %s.",
		escape(event.Title), escape(labelText), service.FormatMinutes(event.DurationMinutes), status)
	return b.sendWithReplyMarkup(chatID, text, mainMenuKeyboard())
}

func (b *Bot) handleListEvents(ctx context.Context, msg *tgbotapi.Message) error {
	user, err := b.ensureUser(ctx, msg.From)
	if err != nil {
		return err
	}
	loc, err := user.Location()
	if err != nil {
		return err
	}

	events, err := b.eventSvc.ListRecent(ctx, user, 10)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		return b.sendText(msg.Chat.ID, "No events yet. /track something!")
	}

	var sb strings.Builder
	sb.WriteString("📋 <b>Recent events</b>\n")
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, event := range events {
		icon := "🕗"
		action := tgbotapi.NewInlineKeyboardButtonData(
			fmt.Sprintf("✅ done #%d", event.ID), cbCompletePrefix+strconv.FormatUint(uint64(event.ID), 10))
		if event.IsCompleted {
			icon = "✅"
			action = tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("↩️ reopen #%d", event.ID), cbReopenPrefix+strconv.FormatUint(uint64(event.ID), 10))
		}
		sb.WriteString(fmt.Sprintf("%s #%d %s — %s, %s\n",
			icon, event.ID, escape(shortTitle(event.Title, 40)),
			event.StartAt.In(loc).Format("02.01 15:04"), service.FormatMinutes(event.DurationMinutes)))
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			action,
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("🗑 #%d", event.ID), cbDeletePrefix+strconv.FormatUint(uint64(event.ID), 10)),
		))
	}

	return b.sendWithReplyMarkup(msg.Chat.ID, sb.String(), tgbotapi.NewInlineKeyboardMarkup(rows...))
}

func (b *Bot) handleSetCompleted(ctx context.Context, msg *tgbotapi.Message, completed bool) error {
	user, err := b.ensureUser(ctx, msg.From)
	if err != nil {
		return err
	}
	eventID, err := parseEventID(strings.TrimSpace(msg.CommandArguments()), "")
	if err != nil {
		return b.sendText(msg.Chat.ID, "Usage: /complete &lt;id&gt; or /reopen &lt;id&gt; (see /events).")
	}
	return b.setCompletedAndNotify(ctx, msg.Chat.ID, user, eventID, completed)
}

func (b *Bot) setCompletedAndNotify(ctx context.Context, chatID int64, user *model.User, eventID uint, completed bool) error {
	loc, err := user.Location()
	if err != nil {
		return err
	}
	now := time.Now().In(loc)

	var event *model.Event
	if completed {
		event, err = b.eventSvc.CompleteEvent(ctx, user, eventID, now)
	} else {
		event, err = b.eventSvc.ReopenEvent(ctx, user, eventID, now)
	}
	if err != nil {
		log.Printf("set completed: %v", err)
		return b.sendText(chatID, fmt.Sprintf("⚠️ Couldn't update event #%d.", eventID))
	}

	if completed {
		return b.sendText(chatID, fmt.Sprintf("✅ Event #%d done, %s added to your totals.",
			event.ID, service.FormatMinutes(event.DurationMinutes)))
	}
	return b.sendText(chatID, fmt.Sprintf("↩️ Event #%d reopened, %s removed from your totals.",
		event.ID, service.FormatMinutes(event.DurationMinutes)))
}

func (b *Bot) handleDelete(ctx context.Context, msg *tgbotapi.Message) error {
	user, err := b.ensureUser(ctx, msg.From)
	if err != nil {
		return err
	}
	eventID, err := parseEventID(strings.TrimSpace(msg.CommandArguments()), "")
	if err != nil {
		return b.sendText(msg.Chat.ID, "Usage: /delete &lt;id&gt; (see /events).")
	}
	if err := b.eventSvc.DeleteEvent(ctx, user, eventID); err != nil {
		log.Printf("delete event: %v", err)
		return b.sendText(msg.Chat.ID, fmt.Sprintf("⚠️ Couldn't delete event #%d.", eventID))
	}
	return b.sendText(msg.Chat.ID, fmt.Sprintf("🗑 Event #%d deleted.", eventID))
}

func (b *Bot) handleLabels(ctx context.Context, msg *tgbotapi.Message) error {
	user, err := b.ensureUser(ctx, msg.From)
	if err != nil {
		return err
	}
	labels, err := b.labelSvc.List(ctx, user)
	if err != nil {
		return err
	}
	if len(labels) == 0 {
		return b.sendText(msg.Chat.ID, "No labels yet. They appear when you /track with one.")
	}
	var sb strings.Builder
	sb.WriteString("🏷 <b>Labels</b>\n")
	for _, label := range labels {
		sb.WriteString(fmt.Sprintf("• %s\n", escape(label.Name)))
	}
	return b.sendText(msg.Chat.ID, sb.String())
}

func (b *Bot) handleStats(ctx context.Context, msg *tgbotapi.Message) error {
	user, err := b.ensureUser(ctx, msg.From)
	if err != nil {
		return err
	}
	loc, err := user.Location()
	if err != nil {
		return err
	}
	now := time.Now().In(loc)

	name := strings.TrimSpace(msg.CommandArguments())
	if name != "" {
		label, err := b.labelSvc.FindByName(ctx, user, name)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return b.sendText(msg.Chat.ID, fmt.Sprintf("Label %q not found, see /labels.", name))
		case err != nil:
			return err
		}
		stats, err := b.statsSvc.ComputeStats(ctx, user.ID, []uint{label.ID}, now)
		if err != nil {
			return err
		}
		text := service.FormatLabelStats(label.Name, stats)
		if days, err := b.bucketRepo.RecentDays(ctx, user.ID, label.ID, 7); err == nil && len(days) > 0 {
			var sb strings.Builder
			sb.WriteString(text)
			sb.WriteString("\n📅 <b>Recent days</b>\n")
			for _, bucket := range days {
				sb.WriteString(fmt.Sprintf("   %s — %s\n", formatDayValue(bucket.BucketValue), service.FormatMinutes(bucket.DurationMinutes)))
			}
			text = sb.String()
		}
		return b.sendText(msg.Chat.ID, text)
	}

	labels, err := b.labelSvc.List(ctx, user)
	if err != nil {
		return err
	}
	ids := make([]uint, 0, len(labels))
	for _, label := range labels {
		ids = append(ids, label.ID)
	}
	stats, err := b.statsSvc.ComputeStats(ctx, user.ID, ids, now)
	if err != nil {
		return err
	}
	return b.sendText(msg.Chat.ID, service.FormatLabelStats("All labels", stats))
}

func (b *Bot) handleTimezone(ctx context.Context, msg *tgbotapi.Message) error {
	user, err := b.ensureUser(ctx, msg.From)
	if err != nil {
		return err
	}
	zone := strings.TrimSpace(msg.CommandArguments())
	if zone == "" {
		return b.sendText(msg.Chat.ID, fmt.Sprintf("Your timezone is <b>%s</b>. Change it with /timezone Europe/Berlin.", escape(user.Timezone)))
	}
	if _, err := time.LoadLocation(zone); err != nil {
		return b.sendText(msg.Chat.ID, fmt.Sprintf("Unknown timezone %q, expected an IANA name like Europe/Berlin.", zone))
	}
	if err := b.userRepo.UpdateTimezone(ctx, user, zone); err != nil {
		return err
	}
	return b.sendText(msg.Chat.ID, fmt.Sprintf("🌍 Timezone set to <b>%s</b>. New events are sliced in that zone.", escape(zone)))
}

func (b *Bot) handleReport(ctx context.Context, msg *tgbotapi.Message) error {
	user, err := b.ensureUser(ctx, msg.From)
	if err != nil {
		return err
	}
	loc, err := user.Location()
	if err != nil {
		return err
	}
	summary, err := b.reportSvc.DailySummary(ctx, *user, time.Now().In(loc))
	if err != nil {
		return err
	}
	return b.sendText(msg.Chat.ID, summary)
}

// SendDailyReports pushes the daily summary to every known user, in each
// user's own timezone.
func (b *Bot) SendDailyReports(ctx context.Context) error {
	users, err := b.userRepo.ListAll(ctx)
	if err != nil {
		return err
	}

	for _, user := range users {
		loc, err := user.Location()
		if err != nil {
			log.Printf("report for %d: bad timezone %q: %v", user.TelegramID, user.Timezone, err)
			continue
		}
		summary, err := b.reportSvc.DailySummary(ctx, user, time.Now().In(loc))
		if err != nil {
			log.Printf("report for %d: %v", user.TelegramID, err)
			continue
		}
		if err := b.sendText(user.TelegramID, summary); err != nil {
			log.Printf("send report to %d: %v", user.TelegramID, err)
		}
	}
	return nil
}

func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) error {
	if cb.From == nil || cb.Message == nil {
		return nil
	}
	callback := tgbotapi.NewCallback(cb.ID, "")
	if _, err := b.api.Request(callback); err != nil {
		log.Printf("ack callback: %v", err)
	}

	user, err := b.ensureUser(ctx, cb.From)
	if err != nil {
		return err
	}
	chatID := cb.Message.Chat.ID

	switch {
	case strings.HasPrefix(cb.Data, cbCompletePrefix):
		eventID, err := parseEventID(cb.Data, cbCompletePrefix)
		if err != nil {
			return err
		}
		return b.setCompletedAndNotify(ctx, chatID, user, eventID, true)
	case strings.HasPrefix(cb.Data, cbReopenPrefix):
		eventID, err := parseEventID(cb.Data, cbReopenPrefix)
		if err != nil {
			return err
		}
		return b.setCompletedAndNotify(ctx, chatID, user, eventID, false)
	case strings.HasPrefix(cb.Data, cbDeletePrefix):
		eventID, err := parseEventID(cb.Data, cbDeletePrefix)
		if err != nil {
			return err
		}
		if err := b.eventSvc.DeleteEvent(ctx, user, eventID); err != nil {
			log.Printf("delete event: %v", err)
			return b.sendText(chatID, fmt.Sprintf("⚠️ Couldn't delete event #%d.", eventID))
		}
		return b.sendText(chatID, fmt.Sprintf("🗑 Event #%d deleted.", eventID))
	default:
		return nil
	}
}

func (b *Bot) handleMenuAlias(ctx context.Context, msg *tgbotapi.Message) (bool, error) {
	switch msg.Text {
	case menuLabelTrack:
		return true, b.startTrackConversation(ctx, msg)
	case menuLabelEvents:
		return true, b.handleListEvents(ctx, msg)
	case menuLabelStats:
		return true, b.handleStats(ctx, msg)
	case menuLabelHelp:
		return true, b.handleHelp(msg)
	}
	return false, nil
}

func (b *Bot) ensureUser(ctx context.Context, from *tgbotapi.User) (*model.User, error) {
	return b.userRepo.UpsertFromTelegram(ctx, from.ID, from.FirstName, from.LastName, from.UserName, b.config.DefaultTimezone)
}

func (b *Bot) sendText(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	_, err := b.api.Send(msg)
	return err
}

func (b *Bot) sendWithReplyMarkup(chatID int64, text string, markup interface{}) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = markup
	_, err := b.api.Send(msg)
	return err
}

func (b *Bot) setConversation(userID int64, state *conversationState) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.conversations[userID] = state
}

func (b *Bot) getConversation(userID int64) *conversationState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.conversations[userID]
}

func (b *Bot) hasConversation(userID int64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.conversations[userID]
	return ok
}

func (b *Bot) clearConversation(userID int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.conversations, userID)
}

func mainMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(menuLabelTrack),
			tgbotapi.NewKeyboardButton(menuLabelEvents),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(menuLabelStats),
			tgbotapi.NewKeyboardButton(menuLabelHelp),
		),
	)
	kb.ResizeKeyboard = true
	return kb
}

func cancelKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(btnCancelDialog)),
	)
	kb.ResizeKeyboard = true
	return kb
}

func skipKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnSkip),
			tgbotapi.NewKeyboardButton(btnCancelDialog),
		),
	)
	kb.ResizeKeyboard = true
	return kb
}

func nowKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnNow),
			tgbotapi.NewKeyboardButton(btnCancelDialog),
		),
	)
	kb.ResizeKeyboard = true
	return kb
}

func yesNoKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnYes),
			tgbotapi.NewKeyboardButton(btnNo),
		),
	)
	kb.ResizeKeyboard = true
	return kb
}

func parseEventID(data, prefix string) (uint, error) {
	raw := strings.TrimPrefix(data, prefix)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse event id %q: %w", raw, err)
	}
	return uint(id), nil
}

func shortTitle(title string, maxLen int) string {
	title = strings.TrimSpace(title)
	runes := []rune(title)
	if len(runes) <= maxLen {
		return title
	}
	return string(runes[:maxLen-1]) + "…"
}

// formatDayValue renders a YYYYMMDD bucket value as DD.MM.YYYY.
func formatDayValue(value int) string {
	return fmt.Sprintf("%02d.%02d.%04d", value%100, value/100%100, value/10000)
}

func escape(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}
