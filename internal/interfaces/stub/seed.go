package stub

import (
	"time"

	"github.com/kaiiquetome/GraphixWeb/internal/domain/entity"
)

// Seed popula o conjunto com dados de demonstração. Usuários:
// admin/admin1 (Administrador) e op1/secret1 (Operador).
func Seed(d *Dataset) error {
	if _, err := d.AddUser(entity.User{
		Name:    "Administrador",
		Login:   "admin",
		Profile: entity.ProfileAdministrator,
	}, "admin1"); err != nil {
		return err
	}
	if _, err := d.AddUser(entity.User{
		Name:    "Operador Um",
		Login:   "op1",
		Profile: entity.ProfileOperator,
	}, "secret1"); err != nil {
		return err
	}

	account := d.Accounts.create(entity.Account{
		CorporateName: "GraphixWeb Indústria Gráfica LTDA",
		Cnpj:          "12.345.678/0001-90",
		IE:            "123456789",
		Phone:         "(11) 4002-8922",
		Email:         "contato@graphixweb.com.br",
	})

	customers := []entity.Customer{
		{
			CorporateName: "Açaí do Vale Alimentos",
			Cnpj:          "98.765.432/0001-10",
			IE:            "987654321",
			Contact:       "João Pereira",
			Phone:         "(12) 99876-5432",
			Email:         "compras@acaidovale.com.br",
		},
		{
			CorporateName: "Laticínios Serra Azul",
			Cnpj:          "11.222.333/0001-44",
			IE:            "112223334",
			Contact:       "Maria Souza",
			Phone:         "(35) 3222-1100",
			Email:         "maria@serraazul.ind.br",
		},
	}
	for i := range customers {
		customers[i] = d.Customers.create(customers[i])
	}

	products := []entity.Product{
		{
			Description: "Rótulo BOPP Branco 100x80",
			Finish:      "Brilho",
			Color:       "4x0",
			Dimension:   "100x80 mm",
			Knife:       "F-118",
			Tubet:       "3\"",
			Material:    "BOPP",
		},
		{
			Description: "Etiqueta Couché 60x40",
			Finish:      "Fosco",
			Color:       "2x0",
			Dimension:   "60x40 mm",
			Knife:       "F-042",
			Tubet:       "1\"",
			Material:    "Couché",
		},
	}
	for i := range products {
		products[i] = d.Products.create(products[i])
	}

	deadline := time.Now().AddDate(0, 0, 14)
	d.Orders.create(entity.Order{
		CustomerID:       customers[0].ID,
		AccountID:        account.ID,
		Status:           entity.StatusQuote,
		OrderNumber:      1,
		Discount:         50,
		Freight:          120,
		PaymentCondition: "28 dias",
		Seller:           "Carla",
		DeliveryDeadline: &deadline,
		Items: []entity.OrderItem{
			{ProductID: products[0].ID, Quantity: 5000, Total: 0.18},
			{ProductID: products[1].ID, Quantity: 10000, Total: 0.07},
		},
		Total: 5000*0.18 + 10000*0.07 + 120 - 50,
	})

	return nil
}
