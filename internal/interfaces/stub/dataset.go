package stub

import (
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/kaiiquetome/GraphixWeb/internal/domain/entity"
)

// Dataset conjunto de dados em memória servido pelo stub.
type Dataset struct {
	Users         *collection[entity.User, *entity.User]
	Customers     *collection[entity.Customer, *entity.Customer]
	Products      *collection[entity.Product, *entity.Product]
	Accounts      *collection[entity.Account, *entity.Account]
	Orders        *collection[entity.Order, *entity.Order]
	CashFlows     *collection[entity.CashFlow, *entity.CashFlow]
	ServiceOrders *collection[entity.OS, *entity.OS]

	mu        sync.Mutex
	passwords map[string]string // login -> hash bcrypt
	refresh   map[string]int    // refresh token -> user id
}

// NewDataset cria um conjunto vazio.
func NewDataset() *Dataset {
	return &Dataset{
		Users:         newCollection[entity.User, *entity.User](),
		Customers:     newCollection[entity.Customer, *entity.Customer](),
		Products:      newCollection[entity.Product, *entity.Product](),
		Accounts:      newCollection[entity.Account, *entity.Account](),
		Orders:        newCollection[entity.Order, *entity.Order](),
		CashFlows:     newCollection[entity.CashFlow, *entity.CashFlow](),
		ServiceOrders: newCollection[entity.OS, *entity.OS](),
		passwords:     map[string]string{},
		refresh:       map[string]int{},
	}
}

// AddUser insere um usuário com a senha em claro informada (hash bcrypt).
func (d *Dataset) AddUser(u entity.User, password string) (entity.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return entity.User{}, err
	}
	u.Password = "" // o backend nunca devolve a senha
	u = d.Users.create(u)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.passwords[u.Login] = string(hash)
	return u, nil
}

// checkPassword valida login e senha e devolve o usuário.
func (d *Dataset) checkPassword(login, password string) (entity.User, bool) {
	d.mu.Lock()
	hash, ok := d.passwords[login]
	d.mu.Unlock()
	if !ok {
		return entity.User{}, false
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return entity.User{}, false
	}
	var found entity.User
	ok = false
	d.Users.each(nil, func(u entity.User) {
		if u.Login == login {
			found = u
			ok = true
		}
	})
	return found, ok
}

// userByID busca um usuário por id.
func (d *Dataset) userByID(id int) (entity.User, bool) {
	return d.Users.get(id)
}

// issueRefresh emite um refresh token para o usuário.
func (d *Dataset) issueRefresh(userID int) string {
	tok := uuid.NewString()
	d.mu.Lock()
	defer d.mu.Unlock()
	d.refresh[tok] = userID
	return tok
}

// consumeRefresh valida e invalida o refresh token (rotação a cada uso).
func (d *Dataset) consumeRefresh(tok string) (int, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	id, ok := d.refresh[tok]
	if ok {
		delete(d.refresh, tok)
	}
	return id, ok
}
