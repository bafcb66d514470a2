package systems

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sort"
	"sync"

	"github.com/automoto/escape/components"
	"github.com/quasilyte/gdata"
)

const (
	profileKey    = "profile"
	highscoresKey = "highscores"

	defaultQueueSize = 32
	saveAttempts     = 2
)

// ErrPersisterClosed is returned by queries issued after Close.
var ErrPersisterClosed = errors.New("persister closed")

// Store is the key-value backend of the Persister. *gdata.Manager
// satisfies it.
type Store interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// OpenStore opens the per-user data directory for appName.
func OpenStore(appName string) (Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// ProgressSink receives the progress writes produced by a session.
type ProgressSink interface {
	SaveProfile(p components.ProfileData)
	RecordHighscore(h components.Highscore)
}

type nopProgress struct{}

func (nopProgress) SaveProfile(components.ProfileData)  {}
func (nopProgress) RecordHighscore(components.Highscore) {}

type commandKind int

const (
	cmdSaveProfile commandKind = iota
	cmdRecordHighscore
	cmdLoadProfile
	cmdHighscores
)

type command struct {
	kind    commandKind
	profile components.ProfileData
	score   components.Highscore
	level   int
	reply   chan result
}

type result struct {
	profile *components.ProfileData
	scores  []components.Highscore
	err     error
}

// Persister serializes all store access on one worker goroutine. Writes
// are queued without blocking the caller; a full queue drops the write.
type Persister struct {
	store Store
	cmds  chan command
	quit  chan struct{}
	done  chan struct{}

	mu     sync.Mutex
	closed bool
}

// NewPersister starts the worker. It stops when ctx is cancelled or Close
// is called.
func NewPersister(ctx context.Context, store Store, queueSize int) *Persister {
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	p := &Persister{
		store: store,
		cmds:  make(chan command, queueSize),
		quit:  make(chan struct{}),
		done:  make(chan struct{}),
	}
	go p.run(ctx)
	return p
}

func (p *Persister) SaveProfile(profile components.ProfileData) {
	p.enqueue(command{kind: cmdSaveProfile, profile: profile})
}

func (p *Persister) RecordHighscore(h components.Highscore) {
	p.enqueue(command{kind: cmdRecordHighscore, score: h})
}

// enqueue hands a command to the worker without blocking.
func (p *Persister) enqueue(cmd command) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		log.Printf("Warning: Could not queue save: %v", ErrPersisterClosed)
		return
	}
	select {
	case p.cmds <- cmd:
	default:
		log.Printf("Warning: Save queue full, dropping write")
	}
}

// LoadProfile returns the stored profile, or nil when none was saved yet.
func (p *Persister) LoadProfile(ctx context.Context) (*components.ProfileData, error) {
	res, err := p.query(ctx, command{kind: cmdLoadProfile})
	if err != nil {
		return nil, err
	}
	return res.profile, res.err
}

// Highscores returns the runs recorded for a level, fewest deaths first.
func (p *Persister) Highscores(ctx context.Context, level int) ([]components.Highscore, error) {
	res, err := p.query(ctx, command{kind: cmdHighscores, level: level})
	if err != nil {
		return nil, err
	}
	return res.scores, res.err
}

func (p *Persister) query(ctx context.Context, cmd command) (result, error) {
	cmd.reply = make(chan result, 1)

	p.mu.Lock()
	closed := p.closed
	p.mu.Unlock()
	if closed {
		return result{}, ErrPersisterClosed
	}

	// cmds is never closed, so the send may block without holding mu.
	select {
	case p.cmds <- cmd:
	case <-p.quit:
		return result{}, ErrPersisterClosed
	case <-p.done:
		return result{}, ErrPersisterClosed
	case <-ctx.Done():
		return result{}, ctx.Err()
	}

	select {
	case res := <-cmd.reply:
		return res, nil
	case <-p.done:
		select {
		case res := <-cmd.reply:
			return res, nil
		default:
		}
		return result{}, ErrPersisterClosed
	case <-ctx.Done():
		return result{}, ctx.Err()
	}
}

// Close stops accepting commands, drains the queue and waits for the worker.
func (p *Persister) Close() {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.quit)
	}
	p.mu.Unlock()
	<-p.done
}

func (p *Persister) run(ctx context.Context) {
	defer close(p.done)
	for {
		select {
		case cmd := <-p.cmds:
			p.handle(cmd)
		case <-p.quit:
			p.drain()
			return
		case <-ctx.Done():
			return
		}
	}
}

// drain handles what was queued before Close.
func (p *Persister) drain() {
	for {
		select {
		case cmd := <-p.cmds:
			p.handle(cmd)
		default:
			return
		}
	}
}

func (p *Persister) handle(cmd command) {
	switch cmd.kind {
	case cmdSaveProfile:
		if err := p.save(profileKey, cmd.profile); err != nil {
			log.Printf("Warning: Could not save profile: %v", err)
		}
	case cmdRecordHighscore:
		scores, err := p.loadHighscores()
		if err != nil {
			log.Printf("Warning: Could not load highscores: %v", err)
			return
		}
		h := cmd.score
		h.ID = 1
		for _, s := range scores {
			if s.ID >= h.ID {
				h.ID = s.ID + 1
			}
		}
		if err := p.save(highscoresKey, append(scores, h)); err != nil {
			log.Printf("Warning: Could not save highscore: %v", err)
		}
	case cmdLoadProfile:
		profile, err := p.loadProfile()
		cmd.reply <- result{profile: profile, err: err}
	case cmdHighscores:
		scores, err := p.loadHighscores()
		cmd.reply <- result{scores: levelScores(scores, cmd.level), err: err}
	}
}

func (p *Persister) save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	for attempt := 1; ; attempt++ {
		err = p.store.SaveItem(key, data)
		if err == nil || attempt >= saveAttempts {
			return err
		}
	}
}

func (p *Persister) loadProfile() (*components.ProfileData, error) {
	data, err := p.store.LoadItem(profileKey)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}
	var profile components.ProfileData
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (p *Persister) loadHighscores() ([]components.Highscore, error) {
	data, err := p.store.LoadItem(highscoresKey)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}
	var scores []components.Highscore
	if err := json.Unmarshal(data, &scores); err != nil {
		return nil, err
	}
	return scores, nil
}

func levelScores(all []components.Highscore, level int) []components.Highscore {
	var scores []components.Highscore
	for _, s := range all {
		if s.Level == level {
			scores = append(scores, s)
		}
	}
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Deaths < scores[j].Deaths
	})
	return scores
}
