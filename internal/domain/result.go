package domain

// Результаты операций хранилища в "драйверном" формате: клиенты исходного
// API получали ответы драйвера БД как есть, поэтому контракт сохранен.

// InsertOneResult возвращается после вставки документа
type InsertOneResult struct {
	InsertedID string `json:"insertedId"`
}

// UpdateResult возвращается после обновления документа
type UpdateResult struct {
	MatchedCount  int64   `json:"matchedCount"`
	ModifiedCount int64   `json:"modifiedCount"`
	UpsertedID    *string `json:"upsertedId,omitempty"`
}

// DeleteResult возвращается после удаления документа
type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}
