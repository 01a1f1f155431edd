package models

type Category struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	Color           string `json:"color,omitempty"`
	Icon            string `json:"icon,omitempty"`
	Type            string `json:"type"`
	TransactionType string `json:"transactionType"`
	IsDefault       bool   `json:"isDefault"`
	IsActive        bool   `json:"isActive"`
}

type CreateCategoryRequest struct {
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	Icon            string `json:"icon,omitempty"`
	Color           string `json:"color,omitempty"`
	Type            string `json:"type"`
	TransactionType string `json:"transactionType"`
}

type UpdateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Color       string `json:"color,omitempty"`
	IsActive    bool   `json:"isActive"`
}
