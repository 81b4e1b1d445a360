package events

import "testing"

func TestNewPublisherBestEffortConfig(t *testing.T) {
	p := NewPublisher("kafka:9092", "bot-posts")
	defer p.Close()

	if !p.w.Async {
		t.Fatal("writer must be async so publishing never blocks a request")
	}
	if p.w.ErrorLogger == nil {
		t.Fatal("async writer needs an error logger, otherwise losses vanish silently")
	}
	if p.w.Topic != "bot-posts" {
		t.Fatalf("topic = %q", p.w.Topic)
	}
}
