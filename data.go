package serialization

import (
	"github.com/DevRoss/nautilus-trader/model"
)

const (
	tagDataRequest  = "DataRequest"
	tagDataResponse = "DataResponse"
)

// MsgPackRequestSerializer encodes data requests. The query map passes
// through verbatim; no key ordering is guaranteed.
type MsgPackRequestSerializer struct{}

// NewMsgPackRequestSerializer creates a request serializer.
func NewMsgPackRequestSerializer() *MsgPackRequestSerializer {
	return &MsgPackRequestSerializer{}
}

// Serialize encodes the given data request.
func (s *MsgPackRequestSerializer) Serialize(request model.DataRequest) ([]byte, error) {
	p := newPacker()
	putEnvelope(p, tagDataRequest, request.ID, request.Timestamp)
	p.putStringMap("Query", request.Query)
	return p.bytes()
}

// Deserialize decodes a data request payload.
func (s *MsgPackRequestSerializer) Deserialize(data []byte) (model.DataRequest, error) {
	f, err := decodeFieldMap(data)
	if err != nil {
		return model.DataRequest{}, err
	}
	tag, err := f.str("Type")
	if err != nil {
		return model.DataRequest{}, err
	}
	if tag != tagDataRequest {
		return model.DataRequest{}, UnknownVariantTagError{Tag: tag}
	}
	f.setVariant(tag)
	id, err := f.guid("Id")
	if err != nil {
		return model.DataRequest{}, err
	}
	timestamp, err := f.timestamp("Timestamp")
	if err != nil {
		return model.DataRequest{}, err
	}
	query, err := f.stringMap("Query")
	if err != nil {
		return model.DataRequest{}, err
	}
	return model.DataRequest{Query: query, ID: id, Timestamp: timestamp}, nil
}

// MsgPackResponseSerializer encodes data responses. The data blob is
// opaque; DataEncoding names its format and is never validated against
// the blob's contents.
type MsgPackResponseSerializer struct{}

// NewMsgPackResponseSerializer creates a response serializer.
func NewMsgPackResponseSerializer() *MsgPackResponseSerializer {
	return &MsgPackResponseSerializer{}
}

// Serialize encodes the given data response.
func (s *MsgPackResponseSerializer) Serialize(response model.DataResponse) ([]byte, error) {
	p := newPacker()
	putEnvelope(p, tagDataResponse, response.ResponseID, response.ResponseTimestamp)
	p.putString("CorrelationId", response.CorrelationID.String())
	p.putBytes("Data", response.Data)
	p.putString("DataEncoding", response.DataEncoding)
	return p.bytes()
}

// Deserialize decodes a data response payload.
func (s *MsgPackResponseSerializer) Deserialize(data []byte) (model.DataResponse, error) {
	f, err := decodeFieldMap(data)
	if err != nil {
		return model.DataResponse{}, err
	}
	tag, err := f.str("Type")
	if err != nil {
		return model.DataResponse{}, err
	}
	if tag != tagDataResponse {
		return model.DataResponse{}, UnknownVariantTagError{Tag: tag}
	}
	f.setVariant(tag)
	id, err := f.guid("Id")
	if err != nil {
		return model.DataResponse{}, err
	}
	timestamp, err := f.timestamp("Timestamp")
	if err != nil {
		return model.DataResponse{}, err
	}
	correlationID, err := f.guid("CorrelationId")
	if err != nil {
		return model.DataResponse{}, err
	}
	blob, err := f.bytesField("Data")
	if err != nil {
		return model.DataResponse{}, err
	}
	encoding, err := f.str("DataEncoding")
	if err != nil {
		return model.DataResponse{}, err
	}
	return model.DataResponse{
		Data:              blob,
		DataEncoding:      encoding,
		CorrelationID:     correlationID,
		ResponseID:        id,
		ResponseTimestamp: timestamp,
	}, nil
}
