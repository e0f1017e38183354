package debate

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"go-debate/internal/conversation"
)

// ErrEmptyMessage is returned for requests without message text.
var ErrEmptyMessage = errors.New("message is required")

// Generator is the engine's view of the backend chain.
type Generator interface {
	Generate(ctx context.Context, prompt string, maxTokens int, timeout time.Duration) (string, error)
}

// Engine runs one debate exchange end to end: resolve or create the
// conversation, filter the input, assemble the prompt, generate, filter the
// reply, and commit the exchange as one atomic group. Exchanges on the same
// conversation are serialized; the store is never locked across the network
// call.
type Engine struct {
	store     conversation.Store
	gen       Generator
	filter    *SafetyFilter
	maxTokens int
	timeout   time.Duration
	locks     *lockTable
}

func NewEngine(store conversation.Store, gen Generator, maxTokens int, timeout time.Duration) *Engine {
	return &Engine{
		store:     store,
		gen:       gen,
		filter:    NewSafetyFilter(),
		maxTokens: maxTokens,
		timeout:   timeout,
		locks:     newLockTable(),
	}
}

// Result is what a completed exchange returns to the transport layer.
type Result struct {
	ConversationID string
	Window         []conversation.Entry
}

// Exchange processes one user message. An empty conversation id starts a new
// debate; a stale or unknown id surfaces conversation.ErrNotFound. Nothing is
// committed until a reply exists, so an abandoned request leaves no
// half-applied state behind.
func (e *Engine) Exchange(ctx context.Context, convID, message string) (*Result, error) {
	msg := strings.TrimSpace(message)
	if msg == "" {
		return nil, ErrEmptyMessage
	}
	if convID == "" {
		return e.exchangeNew(ctx, msg)
	}

	e.locks.acquire(convID)
	defer e.locks.release(convID)

	conv, err := e.store.Get(ctx, convID)
	if err != nil {
		return nil, err
	}
	reply, summary, err := e.respond(ctx, conv, msg)
	if err != nil {
		return nil, err
	}
	updated, err := e.store.CommitExchange(ctx, convID, msg, reply, summary)
	if err != nil {
		return nil, err
	}
	return &Result{
		ConversationID: updated.ID,
		Window:         updated.RecentWindow(conversation.WindowSize),
	}, nil
}

// exchangeNew runs a first exchange. The conversation only reaches the store
// at commit time: its id has never been handed out, so no lock is needed and
// a failed generation leaves nothing behind.
func (e *Engine) exchangeNew(ctx context.Context, msg string) (*Result, error) {
	topic, stance := Classify(msg)
	pending := &conversation.Conversation{Topic: topic, Stance: stance}

	reply, summary, err := e.respond(ctx, pending, msg)
	if err != nil {
		return nil, err
	}
	conv, err := e.store.Create(ctx, topic, stance)
	if err != nil {
		return nil, fmt.Errorf("create conversation: %w", err)
	}
	log.Printf("[Engine] New conversation %s (topic: %s)", conv.ID, topic)

	updated, err := e.store.CommitExchange(ctx, conv.ID, msg, reply, summary)
	if err != nil {
		return nil, err
	}
	return &Result{
		ConversationID: updated.ID,
		Window:         updated.RecentWindow(conversation.WindowSize),
	}, nil
}

// respond produces the turn's reply and updated summary without mutating any
// state. Unsafe input skips generation entirely; an unsafe candidate reply is
// discarded, not repaired.
func (e *Engine) respond(ctx context.Context, conv *conversation.Conversation, userMsg string) (reply, summary string, err error) {
	if !e.filter.IsSafe(userMsg) {
		log.Printf("[Engine] Blocked user input on conversation %s", conv.ID)
		reply = SafeRefusal
	} else {
		window := append(conv.RecentWindow(conversation.WindowSize), conversation.Entry{
			Role: conversation.RoleUser,
			Text: userMsg,
		})
		if len(window) > conversation.WindowSize {
			window = window[len(window)-conversation.WindowSize:]
		}
		prompt := BuildPrompt(conv, window)
		reply, err = e.gen.Generate(ctx, prompt, e.maxTokens, e.timeout)
		if err != nil {
			return "", "", fmt.Errorf("generate reply: %w", err)
		}
	}
	if !e.filter.IsSafe(reply) {
		log.Printf("[Engine] Blocked generated reply on conversation %s", conv.ID)
		reply = SafeContinuation
	}
	return reply, UpdateSummary(conv.Summary, reply), nil
}
