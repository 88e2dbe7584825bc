package model

import (
	"time"

	"github.com/google/uuid"
)

// DataRequest is a generic data query. The query map is passed through the
// codec verbatim; only the "DataType" key has structural meaning upstream.
type DataRequest struct {
	Query     map[string]string
	ID        uuid.UUID
	Timestamp time.Time
}

// DataResponse carries opaque response bytes. DataEncoding names the format
// of Data; the codec never inspects the blob.
type DataResponse struct {
	Data              []byte
	DataEncoding      string
	CorrelationID     uuid.UUID
	ResponseID        uuid.UUID
	ResponseTimestamp time.Time
}
