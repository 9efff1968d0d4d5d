// Данный файл должен быть сгенерирован из openapi спецификации и называться types.gen.go
package rest

// SearchRequest Параметры формы поиска рейсов
type SearchRequest struct {
	From string `json:"from" validate:"required"`
	To   string `json:"to" validate:"required"`
	// Date Дата вылета, YYYY-MM-DD
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

// ChartRequest Выбранные авиакомпании для графика частоты рейсов
type ChartRequest struct {
	Airlines []string `json:"airlines" validate:"dive,required"`
}

// Patch Описание изменения DOM
type Patch struct {
	Target   string   `json:"target"`
	Op       string   `json:"op"`
	HTML     string   `json:"html,omitempty"`
	Src      string   `json:"src,omitempty"`
	Behavior string   `json:"behavior,omitempty"`
	Options  []Option `json:"options,omitempty"`
}

// Option Элемент выпадающего списка
type Option struct {
	Value string `json:"value"`
	Text  string `json:"text"`
}

// PatchResponse Ответ UI-эндпоинтов
type PatchResponse struct {
	Patches []Patch `json:"patches"`
}

// Error Модель ошибок
type Error struct {
	// Code Код ошибки
	Code ErrorCode `json:"code"`

	// Message Сообщение об ошибке
	Message string `json:"message"`

	// SupportID Идентификатор запроса для поддержки
	SupportID string `json:"supportId"`
}

// ErrorCode Код ошибки
type ErrorCode string
