package directive

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// FlowOrder is the flowOrder hint. On the wire it is either an ordered list
// of zone ids or a boolean that only toggles the default flow.
type FlowOrder struct {
	Show  bool
	Order []string
}

// ShowFlow returns a FlowOrder that only toggles visibility.
func ShowFlow(show bool) *FlowOrder {
	return &FlowOrder{Show: show}
}

// Ordered returns a visible FlowOrder through the given zone ids.
func Ordered(ids ...string) *FlowOrder {
	return &FlowOrder{Show: true, Order: ids}
}

// MarshalJSON writes the list form when an order is present, else the bool.
func (f FlowOrder) MarshalJSON() ([]byte, error) {
	if len(f.Order) > 0 {
		return json.Marshal(f.Order)
	}
	return json.Marshal(f.Show)
}

// UnmarshalJSON accepts a string array or a boolean.
func (f *FlowOrder) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}
	switch data[0] {
	case '[':
		var ids []string
		if err := json.Unmarshal(data, &ids); err != nil {
			return fmt.Errorf("flowOrder list: %w", err)
		}
		f.Order = ids
		f.Show = true
	case 't', 'f':
		var show bool
		if err := json.Unmarshal(data, &show); err != nil {
			return fmt.Errorf("flowOrder flag: %w", err)
		}
		f.Show = show
		f.Order = nil
	default:
		return fmt.Errorf("flowOrder must be a list of zone ids or a boolean, got %s", data)
	}
	return nil
}

// MarshalYAML mirrors MarshalJSON.
func (f FlowOrder) MarshalYAML() (any, error) {
	if len(f.Order) > 0 {
		return f.Order, nil
	}
	return f.Show, nil
}

// UnmarshalYAML accepts a sequence of ids or a boolean scalar.
func (f *FlowOrder) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var ids []string
		if err := value.Decode(&ids); err != nil {
			return fmt.Errorf("flowOrder list: %w", err)
		}
		f.Order = ids
		f.Show = true
	case yaml.ScalarNode:
		var show bool
		if err := value.Decode(&show); err != nil {
			return fmt.Errorf("flowOrder flag: %w", err)
		}
		f.Show = show
		f.Order = nil
	default:
		return fmt.Errorf("flowOrder must be a list of zone ids or a boolean (line %d)", value.Line)
	}
	return nil
}
