package handlers

import (
	"fmt"
	"time"

	"myrendezvous/domain"
	"myrendezvous/service"

	"google.golang.org/protobuf/types/known/structpb"
)

// ToBindingStruct converts a binding to its wire form.
func ToBindingStruct(b domain.Binding) *structpb.Struct {
	fields := map[string]*structpb.Value{
		"name":      structpb.NewStringValue(b.Name),
		"address":   structpb.NewStringValue(b.Address),
		"export_id": structpb.NewStringValue(b.ExportID),
	}
	if !b.BoundAt.IsZero() {
		fields["bound_at"] = structpb.NewStringValue(b.BoundAt.UTC().Format(time.RFC3339Nano))
	}
	return &structpb.Struct{Fields: fields}
}

func toBindingList(bindings []domain.Binding) *structpb.ListValue {
	values := make([]*structpb.Value, 0, len(bindings))
	for _, b := range bindings {
		values = append(values, structpb.NewStructValue(ToBindingStruct(b)))
	}
	return &structpb.ListValue{Values: values}
}

// ToValue converts a JSON-like management value to a protobuf Value.
// Returns internal_server_error for values that have no JSON form.
func ToValue(v any) (*structpb.Value, error) {
	value, err := structpb.NewValue(normalize(v))
	if err != nil {
		return nil, service.NewInternalServerError(fmt.Sprintf("value of type %T can't be encoded", v), err)
	}
	return value, nil
}

// normalize turns typed slices and maps into the []any / map[string]any forms structpb accepts.
func normalize(v any) any {
	switch t := v.(type) {
	case []string:
		out := make([]any, len(t))
		for i, s := range t {
			out[i] = s
		}
		return out
	case []float64:
		out := make([]any, len(t))
		for i, f := range t {
			out[i] = f
		}
		return out
	case []int:
		out := make([]any, len(t))
		for i, n := range t {
			out[i] = n
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = normalize(e)
		}
		return out
	case map[string]string:
		out := make(map[string]any, len(t))
		for k, s := range t {
			out[k] = s
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = normalize(e)
		}
		return out
	case time.Duration:
		return t.Seconds()
	case time.Time:
		return t.UTC().Format(time.RFC3339Nano)
	default:
		return v
	}
}

// ToAttributeStruct converts an attribute with its current value to its wire form.
func ToAttributeStruct(a domain.Attribute) (*structpb.Struct, error) {
	value, err := ToValue(a.Value)
	if err != nil {
		return nil, err
	}
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"name":        structpb.NewStringValue(a.Name),
		"description": structpb.NewStringValue(a.Description),
		"value":       value,
		"writable":    structpb.NewBoolValue(a.Writable),
	}}, nil
}

func toAttributeList(attributes []domain.Attribute) (*structpb.ListValue, error) {
	values := make([]*structpb.Value, 0, len(attributes))
	for _, a := range attributes {
		s, err := ToAttributeStruct(a)
		if err != nil {
			return nil, fmt.Errorf("attribute %s: %w", a.Name, err)
		}
		values = append(values, structpb.NewStructValue(s))
	}
	return &structpb.ListValue{Values: values}, nil
}

func toOperationList(operations []domain.Operation) *structpb.ListValue {
	values := make([]*structpb.Value, 0, len(operations))
	for _, o := range operations {
		values = append(values, structpb.NewStructValue(&structpb.Struct{Fields: map[string]*structpb.Value{
			"name":        structpb.NewStringValue(o.Name),
			"description": structpb.NewStringValue(o.Description),
		}}))
	}
	return &structpb.ListValue{Values: values}
}

// ToSetAttributeRequest builds the SetAttribute request message.
func ToSetAttributeRequest(name string, value any) (*structpb.Struct, error) {
	v, err := ToValue(value)
	if err != nil {
		return nil, err
	}
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"name":  structpb.NewStringValue(name),
		"value": v,
	}}, nil
}

// ToInvokeRequest builds the Invoke request message.
func ToInvokeRequest(name string, args []any) (*structpb.Struct, error) {
	list := make([]*structpb.Value, 0, len(args))
	for i, a := range args {
		v, err := ToValue(a)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		list = append(list, v)
	}
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"name": structpb.NewStringValue(name),
		"args": structpb.NewListValue(&structpb.ListValue{Values: list}),
	}}, nil
}
