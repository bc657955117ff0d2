package config

import (
	"errors"

	"github.com/andreyvit/tinyjson"

	"ledsense-go/bus"
)

// Service publishes the configuration document for one device at boot.
// Every top-level key of the device's JSON becomes a retained message on
// "config/<key>", so services can start in any order and still find their
// section.
type Service struct {
	Device  string
	Configs map[string][]byte // nil => the embedded defaults
}

func New(device string) *Service {
	return &Service{Device: device}
}

func (s *Service) lookup() ([]byte, bool) {
	docs := s.Configs
	if docs == nil {
		docs = embeddedConfigs
	}
	raw, ok := docs[s.Device]
	return raw, ok
}

// publish parses the document and fans its sections out on the bus.
func (s *Service) publish(conn *bus.Connection) error {
	if s.Device == "" {
		return errors.New("config: no device selected")
	}
	raw, ok := s.lookup()
	if !ok || len(raw) == 0 {
		return errors.New("config: no document for device: " + s.Device)
	}

	r := tinyjson.Raw(raw)
	val := r.Value()
	r.EnsureEOF()

	doc, ok := val.(map[string]any)
	if !ok {
		return errors.New("config: document for " + s.Device + " is not a JSON object")
	}

	for section, body := range doc {
		conn.Publish(&bus.Message{
			Topic:    bus.T("config", section),
			Payload:  body,
			Retained: true,
		})
	}
	return nil
}

// Start publishes asynchronously. Consumers block on their retained
// sections, not on this call.
func (s *Service) Start(conn *bus.Connection) {
	go func() {
		if err := s.publish(conn); err != nil {
			println("Error:", err.Error())
		}
	}()
}
