// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"github.com/allisson/constguard/internal/obfuscation/domain"
)

// ConstantResponse represents a decoded constant in API responses.
// Value carries the exact textual form so decimals keep every digit.
type ConstantResponse struct {
	Group string `json:"group"`
	Name  string `json:"name"`
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

// ConstantInfoResponse describes a constant without its value.
type ConstantInfoResponse struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
}

// GroupResponse represents a registered constant group in API responses.
type GroupResponse struct {
	Name      string                 `json:"name"`
	Family    string                 `json:"family"`
	Constants []ConstantInfoResponse `json:"constants"`
}

// ListConstantsResponse represents a paginated list of constants in API responses.
type ListConstantsResponse struct {
	Data []ConstantResponse `json:"data"`
}

// ListGroupsResponse represents the registered groups in API responses.
type ListGroupsResponse struct {
	Data []GroupResponse `json:"data"`
}

// MapValueToResponse converts a decoded value to an API response.
func MapValueToResponse(value domain.Value) ConstantResponse {
	return ConstantResponse{
		Group: value.Group,
		Name:  value.Name,
		Kind:  string(value.Kind),
		Value: value.String(),
	}
}

// MapValuesToListResponse converts decoded values to a list response.
func MapValuesToListResponse(values []domain.Value) ListConstantsResponse {
	data := make([]ConstantResponse, 0, len(values))
	for _, value := range values {
		data = append(data, MapValueToResponse(value))
	}

	return ListConstantsResponse{
		Data: data,
	}
}

// MapGroupsToListResponse converts group descriptions to a list response.
func MapGroupsToListResponse(groups []domain.GroupInfo) ListGroupsResponse {
	data := make([]GroupResponse, 0, len(groups))
	for _, group := range groups {
		constants := make([]ConstantInfoResponse, 0, len(group.Constants))
		for _, info := range group.Constants {
			constants = append(constants, ConstantInfoResponse{Name: info.Name, Kind: string(info.Kind)})
		}
		data = append(data, GroupResponse{
			Name:      group.Name,
			Family:    string(group.Family),
			Constants: constants,
		})
	}

	return ListGroupsResponse{
		Data: data,
	}
}
