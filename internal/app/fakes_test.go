package app

import (
	"context"
	"errors"
	"sync"

	apperrors "chanedit/internal/errors"
	"chanedit/internal/model"
	"chanedit/internal/registry"
)

// fakeRegistry 内存版注册中心，按名称脚本化失败
type fakeRegistry struct {
	mu sync.Mutex

	channel   *model.ChannelWire
	getErr    error
	models    []model.ModelInfo
	modelsErr error
	groups    []string
	groupsErr error

	rejectNames    map[string]string // name -> message
	transportNames map[string]bool

	created []*model.ChannelWire
	updated []*model.ChannelWire
}

func (f *fakeRegistry) GetChannel(_ context.Context, id int64) (*model.ChannelWire, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.channel == nil {
		return nil, apperrors.RegistryRejected("get_channel", "not found")
	}
	w := *f.channel
	w.ID = &id
	return &w, nil
}

func (f *fakeRegistry) ListModels(context.Context) ([]model.ModelInfo, error) {
	return f.models, f.modelsErr
}

func (f *fakeRegistry) ListGroups(context.Context) ([]string, error) {
	return f.groups, f.groupsErr
}

func (f *fakeRegistry) CreateChannel(_ context.Context, w *model.ChannelWire) (*registry.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, w)
	return f.result(w)
}

func (f *fakeRegistry) UpdateChannel(_ context.Context, w *model.ChannelWire) (*registry.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updated = append(f.updated, w)
	return f.result(w)
}

func (f *fakeRegistry) result(w *model.ChannelWire) (*registry.Result, error) {
	if f.transportNames[w.Name] {
		return nil, apperrors.HTTPRequestError("http://registry.test/api/channel/", "POST", errors.New("connection reset"))
	}
	if msg, ok := f.rejectNames[w.Name]; ok {
		return &registry.Result{Success: false, Message: msg}, nil
	}
	return &registry.Result{Success: true}, nil
}

type message struct {
	level string
	text  string
}

type recordingReporter struct {
	msgs []message
}

func (r *recordingReporter) Info(msg string)    { r.msgs = append(r.msgs, message{"info", msg}) }
func (r *recordingReporter) Success(msg string) { r.msgs = append(r.msgs, message{"success", msg}) }
func (r *recordingReporter) Error(msg string)   { r.msgs = append(r.msgs, message{"error", msg}) }

func (r *recordingReporter) count(level string) int {
	n := 0
	for _, m := range r.msgs {
		if m.level == level {
			n++
		}
	}
	return n
}

type countingHost struct {
	refreshes int
	closes    int
}

func (h *countingHost) Refresh() { h.refreshes++ }
func (h *countingHost) Close()   { h.closes++ }

type memRecorder struct {
	records []*model.SubmissionRecord
}

func (m *memRecorder) Record(_ context.Context, rec *model.SubmissionRecord) error {
	m.records = append(m.records, rec)
	return nil
}
