package handlers

import (
	"time"

	"myrendezvous/domain"
	"myrendezvous/service"

	"google.golang.org/protobuf/types/known/structpb"
)

// FromBindingStruct converts the wire form back into a binding.
// Returns bad_parameter when the name is missing or bound_at is not RFC 3339.
func FromBindingStruct(s *structpb.Struct) (domain.Binding, error) {
	fields := s.GetFields()
	b := domain.Binding{
		Name:     fields["name"].GetStringValue(),
		Address:  fields["address"].GetStringValue(),
		ExportID: fields["export_id"].GetStringValue(),
	}
	if b.Name == "" {
		return domain.Binding{}, service.NewBadParameterError("binding name is required", nil)
	}
	if raw := fields["bound_at"].GetStringValue(); raw != "" {
		t, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return domain.Binding{}, service.NewBadParameterError("invalid bound_at", err)
		}
		b.BoundAt = t
	}
	return b, nil
}

// FromBindingList converts a List response.
func FromBindingList(l *structpb.ListValue) ([]domain.Binding, error) {
	out := make([]domain.Binding, 0, len(l.GetValues()))
	for _, v := range l.GetValues() {
		b, err := FromBindingStruct(v.GetStructValue())
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

// FromAttributeStruct converts the wire form back into an attribute. Numbers come back as float64.
func FromAttributeStruct(s *structpb.Struct) domain.Attribute {
	fields := s.GetFields()
	return domain.Attribute{
		Name:        fields["name"].GetStringValue(),
		Description: fields["description"].GetStringValue(),
		Value:       fields["value"].AsInterface(),
		Writable:    fields["writable"].GetBoolValue(),
	}
}

func FromAttributeList(l *structpb.ListValue) []domain.Attribute {
	out := make([]domain.Attribute, 0, len(l.GetValues()))
	for _, v := range l.GetValues() {
		out = append(out, FromAttributeStruct(v.GetStructValue()))
	}
	return out
}

func FromOperationList(l *structpb.ListValue) []domain.Operation {
	out := make([]domain.Operation, 0, len(l.GetValues()))
	for _, v := range l.GetValues() {
		fields := v.GetStructValue().GetFields()
		out = append(out, domain.Operation{
			Name:        fields["name"].GetStringValue(),
			Description: fields["description"].GetStringValue(),
		})
	}
	return out
}

// fromInvokeRequest extracts the operation name and arguments of an Invoke request.
func fromInvokeRequest(s *structpb.Struct) (string, []any) {
	fields := s.GetFields()
	values := fields["args"].GetListValue().GetValues()
	args := make([]any, 0, len(values))
	for _, v := range values {
		args = append(args, v.AsInterface())
	}
	return fields["name"].GetStringValue(), args
}
