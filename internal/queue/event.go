// Package queue defines message payloads exchanged over the message broker.
package queue

// MediaEvent is published whenever a media record is created, updated
// or deleted. It carries enough information for downstream consumers to
// log or trigger analytics without querying the primary database.
type MediaEvent struct {
    Accion     string `json:"accion"` // created, updated or deleted
    MediaID    uint64 `json:"media_id"`
    Serial     string `json:"serial"`
    Titulo     string `json:"titulo"`
    Actor      string `json:"actor"` // email of the user who performed the change
    OcurridoEn string `json:"ocurrido_en"`
}
