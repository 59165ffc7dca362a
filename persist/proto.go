package persist

import "google.golang.org/protobuf/types/known/structpb"

// RecordToProto converts a record into a protobuf Struct, for callers that
// carry persisted steps over protobuf transports.
func RecordToProto(rec Record) (*structpb.Struct, error) {
	return structpb.NewStruct(rec)
}

// RecordFromProto converts a protobuf Struct back into a record.
func RecordFromProto(s *structpb.Struct) Record {
	if s == nil {
		return nil
	}
	return s.AsMap()
}
