package model

// Envelope messages
const (
	MessageOK          = "OK"
	MessageUserDeleted = "user borrado"
	MessageFavoriteOK  = "Ok"
)

// Serializer is implemented by every entity
type Serializer interface {
	Serialize() map[string]interface{}
}

// ListResponse wraps every row of a resource
type ListResponse struct {
	Message      string                   `json:"message"`
	TotalRecords int                      `json:"total_records"`
	Results      []map[string]interface{} `json:"results"`
}

// ItemResponse wraps a single row
type ItemResponse struct {
	Message string                 `json:"message"`
	Result  map[string]interface{} `json:"result"`
}

// DeleteUserResponse confirms a user deletion
type DeleteUserResponse struct {
	Message string `json:"message"`
	User    int64  `json:"user"`
}

// NewListResponse serializes items into a list envelope. Results is never nil.
func NewListResponse[T Serializer](items []T) *ListResponse {
	results := make([]map[string]interface{}, 0, len(items))
	for _, item := range items {
		results = append(results, item.Serialize())
	}
	return &ListResponse{
		Message:      MessageOK,
		TotalRecords: len(results),
		Results:      results,
	}
}

// NewItemResponse serializes a single row into an item envelope
func NewItemResponse(item Serializer) *ItemResponse {
	return &ItemResponse{
		Message: MessageOK,
		Result:  item.Serialize(),
	}
}
