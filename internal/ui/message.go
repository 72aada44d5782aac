package ui

import (
	"github.com/desertthunder/statx/internal/metrics"
)

// MsgType discriminates the messages delivered to [Model.Update].
type MsgType int

const (
	MsgProgress MsgType = iota
	MsgFetchDone
	MsgFetchError
)

// Msg is the union type carrying application events into the update loop.
type Msg struct {
	kind    MsgType
	update  metrics.ProgressUpdate
	records []metrics.Record
	err     error
}

func progressMsg(u metrics.ProgressUpdate) Msg {
	return Msg{kind: MsgProgress, update: u}
}

func fetchDoneMsg(records []metrics.Record) Msg {
	return Msg{kind: MsgFetchDone, records: records}
}

func fetchErrorMsg(err error) Msg {
	return Msg{kind: MsgFetchError, err: err}
}
