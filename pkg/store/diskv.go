package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/moments/pkg/reminder"
)

// Snapshot is the local copy of reminders written by `moments sync`. Files
// are bucketed by due date so the on-disk layout mirrors the calendar.
type Snapshot interface {
	List(ctx context.Context) []*reminder.Reminder
	Replace(ctx context.Context, items []*reminder.Reminder) error
	Store(r *reminder.Reminder) error
	Delete(r *reminder.Reminder) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Snapshot backed by diskv using the provided config.
func Load(cfg Config) (Snapshot, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &snapshot{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type snapshot struct {
	d        *diskv.Diskv
	basePath string
}

const (
	layoutISO  = "2006-01-02"
	undatedDir = "undated"
)

func (s *snapshot) read(key string) (*reminder.Reminder, error) {
	val, err := s.d.Read(key)
	if err != nil {
		return nil, err
	}
	r := &reminder.Reminder{}
	if err := json.Unmarshal(val, r); err != nil {
		return nil, err
	}
	if r.ID == "" {
		r.ID = keyToPathTransform(key).FileName
	}
	return r, nil
}

func (s *snapshot) List(ctx context.Context) []*reminder.Reminder {
	all := make([]*reminder.Reminder, 0)
	for key := range s.d.Keys(ctx.Done()) {
		r, err := s.read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, r)
	}
	reminder.SortByDue(all)
	return all
}

// Replace swaps the snapshot contents for the given reminders.
func (s *snapshot) Replace(ctx context.Context, items []*reminder.Reminder) error {
	for key := range s.d.Keys(ctx.Done()) {
		if err := s.d.Erase(key); err != nil {
			return err
		}
	}
	for _, r := range items {
		if err := s.Store(r); err != nil {
			return err
		}
	}
	return nil
}

func (s *snapshot) Store(r *reminder.Reminder) error {
	key, err := toKey(r)
	if err != nil {
		return err
	}
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}
	return s.d.Write(key, data)
}

func (s *snapshot) Delete(r *reminder.Reminder) error {
	key, err := toKey(r)
	if err != nil {
		return err
	}
	return s.d.Erase(key)
}

// toKey makes `date-id`; the date becomes the directory, the id the file.
func toKey(r *reminder.Reminder) (string, error) {
	if r == nil || r.ID == "" {
		return "", errors.New("store: reminder id required")
	}
	day := undatedDir
	if r.Dated() {
		day = r.DueAt.Local().Format(layoutISO)
	}
	return fmt.Sprintf("%s-%s", day, r.ID), nil
}

// Slack reminder ids carry no dashes, so the file name is everything after
// the final dash and the rest is the date directory.
func keyToPathTransform(s string) *diskv.PathKey {
	idx := strings.LastIndex(s, "-")
	if idx < 0 {
		return &diskv.PathKey{Path: []string{undatedDir}, FileName: s}
	}
	return &diskv.PathKey{
		Path:     []string{s[:idx]},
		FileName: s[idx+1:],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}
