package models

// DummyDocumentPatch описывает частичное обновление документа.
// Непереданные поля остаются без изменений; владелец, ID и метки
// создания через этот путь не меняются.
type DummyDocumentPatch struct {
	Title   *string `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Content *string `json:"content,omitempty" validate:"omitempty,min=1"`
}
