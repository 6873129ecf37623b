package entity

// Product produto (rótulo/etiqueta) cadastrado no catálogo.
// Todos os campos são descritivos e opcionais no formulário.
type Product struct {
	Base
	Description string `json:"description,omitempty"`
	Finish      string `json:"finish,omitempty"`
	Color       string `json:"color,omitempty"`
	Dimension   string `json:"dimension,omitempty"`
	Knife       string `json:"knife,omitempty"`
	Tubet       string `json:"tubet,omitempty"`
	Material    string `json:"material,omitempty"`
	Observation string `json:"observation,omitempty"`
}
