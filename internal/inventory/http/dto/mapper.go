package dto

import (
	"github.com/ativoshub/ativos/internal/inventory/domain"
	"github.com/ativoshub/ativos/internal/inventory/usecase"
)

// ToCategoryInput converts a CategoryRequest to a usecase input
func ToCategoryInput(request CategoryRequest) usecase.CategoryInput {
	return usecase.CategoryInput{
		Name: request.Name,
	}
}

// ToFieldDefinitionInput converts a FieldDefinitionRequest to a usecase input
func ToFieldDefinitionInput(request FieldDefinitionRequest) usecase.FieldDefinitionInput {
	return usecase.FieldDefinitionInput{
		Name:      request.Name,
		FieldType: request.FieldType,
	}
}

// ToCreateAssetInput converts a CreateAssetRequest to a usecase input
func ToCreateAssetInput(request CreateAssetRequest) usecase.CreateAssetInput {
	return usecase.CreateAssetInput{
		Patrimonio:  request.Patrimonio,
		CategoryID:  request.Category,
		Status:      request.Status,
		FieldValues: toFieldValueInputs(request.FieldValues),
	}
}

// ToUpdateAssetInput converts an UpdateAssetRequest to a usecase input
func ToUpdateAssetInput(request UpdateAssetRequest) usecase.UpdateAssetInput {
	return usecase.UpdateAssetInput{
		Patrimonio:  request.Patrimonio,
		Status:      request.Status,
		FieldValues: toFieldValueInputs(request.FieldValues),
	}
}

func toFieldValueInputs(requests []AssetFieldValueRequest) []usecase.AssetFieldValueInput {
	if requests == nil {
		return nil
	}
	inputs := make([]usecase.AssetFieldValueInput, 0, len(requests))
	for _, request := range requests {
		inputs = append(inputs, usecase.AssetFieldValueInput{
			FieldDefinition: request.FieldDefinition,
			Value:           request.Value,
		})
	}
	return inputs
}

// ToFieldDefinitionResponse converts a domain field definition to a response
func ToFieldDefinitionResponse(fieldDef *domain.FieldDefinition) FieldDefinitionResponse {
	return FieldDefinitionResponse{
		ID:        fieldDef.ID,
		Name:      fieldDef.Name,
		FieldType: string(fieldDef.FieldType),
	}
}

// ToCategoryResponse converts a domain category to a response
func ToCategoryResponse(category *domain.Category) CategoryResponse {
	response := CategoryResponse{
		ID:        category.ID,
		Name:      category.Name,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}

	if category.FieldDefinitions != nil {
		response.FieldDefinitions = make([]FieldDefinitionResponse, 0, len(category.FieldDefinitions))
		for _, fieldDef := range category.FieldDefinitions {
			response.FieldDefinitions = append(response.FieldDefinitions, ToFieldDefinitionResponse(fieldDef))
		}
	}

	return response
}

// ToListCategoriesResponse converts a page of categories to a response
func ToListCategoriesResponse(categories []*domain.Category) ListCategoriesResponse {
	data := make([]CategoryResponse, 0, len(categories))
	for _, category := range categories {
		data = append(data, ToCategoryResponse(category))
	}
	return ListCategoriesResponse{Data: data}
}

// ToListFieldDefinitionsResponse converts field definitions to a response
func ToListFieldDefinitionsResponse(fieldDefs []*domain.FieldDefinition) ListFieldDefinitionsResponse {
	data := make([]FieldDefinitionResponse, 0, len(fieldDefs))
	for _, fieldDef := range fieldDefs {
		data = append(data, ToFieldDefinitionResponse(fieldDef))
	}
	return ListFieldDefinitionsResponse{Data: data}
}

// ToAssetResponse converts a domain asset to a response
func ToAssetResponse(asset *domain.Asset) AssetResponse {
	fieldValues := make([]AssetFieldValueResponse, 0, len(asset.FieldValues))
	for _, value := range asset.FieldValues {
		fieldValues = append(fieldValues, AssetFieldValueResponse{
			FieldDefinition: value.FieldDefinitionID,
			Value:           value.Value,
		})
	}

	return AssetResponse{
		ID:          asset.ID,
		Patrimonio:  asset.Patrimonio,
		Category:    asset.CategoryID,
		Status:      string(asset.Status),
		FieldValues: fieldValues,
		CreatedAt:   asset.CreatedAt,
		UpdatedAt:   asset.UpdatedAt,
	}
}

// ToListAssetsResponse converts a page of assets to a response
func ToListAssetsResponse(assets []*domain.Asset) ListAssetsResponse {
	data := make([]AssetResponse, 0, len(assets))
	for _, asset := range assets {
		data = append(data, ToAssetResponse(asset))
	}
	return ListAssetsResponse{Data: data}
}
