package observer

import (
	"context"
	"fmt"
	"io"
)

// Notice formats the message a subscriber emits for the channel's current video
func Notice(name string, source VideoSource) string {
	return fmt.Sprintf("Hey %s,%s", name, source.VideoData())
}

// ConsoleSubscriber writes one notice line per update
type ConsoleSubscriber struct {
	id      string
	name    string
	channel VideoSource
	out     io.Writer
}

// NewConsoleSubscriber creates a subscriber bound to channel; the channel is
// not owned by the subscriber
func NewConsoleSubscriber(id, name string, channel VideoSource, out io.Writer) *ConsoleSubscriber {
	return &ConsoleSubscriber{
		id:      id,
		name:    name,
		channel: channel,
		out:     out,
	}
}

func (s *ConsoleSubscriber) ID() string { return s.id }
func (s *ConsoleSubscriber) Name() string { return s.name }

// Update prints the channel's current video data
func (s *ConsoleSubscriber) Update(ctx context.Context) error {
	_, err := fmt.Fprintln(s.out, Notice(s.name, s.channel))
	return err
}
