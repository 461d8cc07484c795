package models

// Record event operations.
const (
	OperationCreate = "create"
	OperationUpdate = "update"
	OperationDelete = "delete"
)

// RecordEvent describes a change to a stored record, published to Kafka after a successful write.
type RecordEvent struct {
	EventID    string `json:"event_id"`   // EventID is a unique identifier for the event.
	Timestamp  int64  `json:"timestamp"`  // Timestamp is the Unix timestamp (in seconds) when the change happened.
	Collection string `json:"collection"` // Collection is the name of the collection that changed, e.g. "items".
	Operation  string `json:"operation"`  // Operation is one of "create", "update" or "delete".
	RecordID   string `json:"record_id"`  // RecordID is the hex form of the changed record's identifier.
}
