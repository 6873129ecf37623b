// graphix é o front end de linha de comando do GraphixWeb: autentica contra o
// backend, mantém a sessão persistida entre execuções e expõe os recursos de
// cliente, produto, pedido, OS, conta, usuário e fluxo de caixa.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/kaiiquetome/GraphixWeb/internal/application/dto"
	"github.com/kaiiquetome/GraphixWeb/internal/application/service"
	"github.com/kaiiquetome/GraphixWeb/internal/application/session"
	"github.com/kaiiquetome/GraphixWeb/internal/domain"
	"github.com/kaiiquetome/GraphixWeb/internal/domain/cashflow"
	"github.com/kaiiquetome/GraphixWeb/internal/domain/entity"
	"github.com/kaiiquetome/GraphixWeb/internal/infrastructure/rest"
	"github.com/kaiiquetome/GraphixWeb/internal/infrastructure/storage"
	"github.com/kaiiquetome/GraphixWeb/pkg/config"
	"github.com/kaiiquetome/GraphixWeb/pkg/logger"
)

const usage = `uso: graphix <comando> [opções]

  login -u <usuário> -p <senha>   inicia a sessão
  logout                          encerra a sessão
  whoami                          identidade e roles da sessão corrente

  customer  list|get              clientes
  product   list|get              produtos
  account   list|get              contas emissoras
  user      list|get              usuários
  order     list|get|status|quote|os|export   pedidos
  os        list|get              ordens de serviço
  cashflow  list|get|summary      fluxo de caixa
`

type app struct {
	log     *logger.Logger
	session *session.Controller

	customers *service.CustomerService
	products  *service.ProductService
	accounts  *service.AccountService
	users     *service.UserService
	orders    *service.OrderService
	workOrder *service.OSService
	cashFlow  *service.CashFlowService
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fatal(fmt.Errorf("carregar configuração: %w", err))
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "warn"})

	store, err := storage.NewTokenStore(cfg.Session.StorePath)
	if err != nil {
		fatal(fmt.Errorf("abrir armazenamento de sessão: %w", err))
	}

	// Transporte anônimo para /auth; o mesmo transporte, ligado ao controlador
	// de sessão, serve todas as fachadas autenticadas.
	anon := rest.New(rest.Options{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout(),
		Logger:  log,
	})
	sess := session.NewController(store, anon, cfg.Session.RefreshTTL(), log)
	api := anon.WithCredentials(sess)

	sess.Subscribe(func(ev session.Event) {
		if ev.Redirect != "" {
			fmt.Fprintf(os.Stderr, "sessão encerrada (%s); autentique-se novamente com `graphix login`\n", ev.Reason)
		}
	})

	ctx := context.Background()
	sess.Restore(ctx)

	a := &app{
		log:       log,
		session:   sess,
		customers: service.NewCustomerService(api),
		products:  service.NewProductService(api),
		accounts:  service.NewAccountService(api),
		users:     service.NewUserService(api),
		orders:    service.NewOrderService(api),
		workOrder: service.NewOSService(api),
		cashFlow:  service.NewCashFlowService(api),
	}

	if err := a.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		fatal(err)
	}
}

func (a *app) run(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "login":
		return a.login(ctx, args)
	case "logout":
		a.session.Logout(ctx)
		fmt.Println("sessão encerrada")
		return nil
	case "whoami":
		return a.whoami()
	case "customer":
		return runResource(ctx, cmd, args, a.customers.List, a.customers.Get)
	case "product":
		return runResource(ctx, cmd, args, a.products.List, a.products.Get)
	case "account":
		return runResource(ctx, cmd, args, a.accounts.List, a.accounts.Get)
	case "user":
		return runResource(ctx, cmd, args, a.users.List, a.users.Get)
	case "os":
		return runResource(ctx, cmd, args, a.workOrder.List, a.workOrder.Get)
	case "order":
		return a.order(ctx, args)
	case "cashflow":
		return a.cashflowCmd(ctx, args)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("comando desconhecido: %s", cmd)
	}
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	user := fs.String("u", "", "usuário")
	pass := fs.String("p", "", "senha")
	_ = fs.Parse(args)
	if *user == "" || *pass == "" {
		return errors.New("login requer -u e -p")
	}
	if err := a.session.Login(ctx, *user, *pass); err != nil {
		return err
	}
	fmt.Printf("autenticado como %s\n", *user)
	return nil
}

func (a *app) whoami() error {
	if !a.session.IsAuthenticated() {
		fmt.Println("sem sessão ativa")
		return nil
	}
	claims, err := a.session.Claims()
	if err != nil {
		return err
	}
	out := map[string]any{
		"state": a.session.State().String(),
		"roles": a.session.Roles(),
		"name":  claims.Name,
		"login": claims.Login,
	}
	if u := a.session.User(); u != nil {
		out["profile"] = u.Profile
	}
	return printJSON(out)
}

// runResource despacha list/get dos recursos CRUD simples.
func runResource[T any](
	ctx context.Context,
	name string,
	args []string,
	list func(context.Context, dto.ListFilter) (dto.ListResponse[T], error),
	get func(context.Context, int) (T, error),
) error {
	if len(args) < 1 {
		return fmt.Errorf("%s requer um subcomando (list|get)", name)
	}
	switch args[0] {
	case "list":
		f, err := parseListFilter(name, args[1:])
		if err != nil {
			return err
		}
		resp, err := list(ctx, f)
		if err != nil {
			return err
		}
		return printJSON(resp)
	case "get":
		id, err := parseID(name, args[1:])
		if err != nil {
			return err
		}
		item, err := get(ctx, id)
		if err != nil {
			return err
		}
		return printJSON(item)
	default:
		return fmt.Errorf("%s: subcomando desconhecido: %s", name, args[0])
	}
}

func (a *app) order(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.New("order requer um subcomando (list|get|status|quote|os|export)")
	}
	switch args[0] {
	case "list", "get":
		return runResource(ctx, "order", args, a.orders.List, a.orders.Get)
	case "status":
		fs := flag.NewFlagSet("order status", flag.ExitOnError)
		id := fs.Int("id", 0, "id do pedido")
		to := fs.Int("to", -1, "novo status (0=Orçamento 1=Em Execução 2=Finalizado 3=Recusado)")
		_ = fs.Parse(args[1:])
		if *id < 1 || !entity.OrderStatus(*to).Valid() {
			return errors.New("order status requer -id e -to válidos")
		}
		updated, err := a.orders.UpdateStatus(ctx, *id, entity.OrderStatus(*to))
		if err != nil {
			if errors.Is(err, domain.ErrInvalidTransition) {
				return fmt.Errorf("transição recusada: %w", err)
			}
			return err
		}
		fmt.Printf("pedido %d agora em %s\n", updated.ID, updated.Status)
		return nil
	case "quote":
		return a.orderFile(ctx, args[1:], "orcamento", a.orders.DownloadQuote)
	case "os":
		return a.orderFile(ctx, args[1:], "ordem-servico", a.orders.DownloadProductionOrder)
	case "export":
		fs := flag.NewFlagSet("order export", flag.ExitOnError)
		start := fs.String("start", "", "data inicial (yyyy-MM-dd)")
		end := fs.String("end", "", "data final (yyyy-MM-dd)")
		out := fs.String("out", "pedidos.pdf", "arquivo de saída")
		_ = fs.Parse(args[1:])
		data, err := a.orders.Export(ctx, *start, *end)
		if err != nil {
			return err
		}
		return writeFile(*out, data)
	default:
		return fmt.Errorf("order: subcomando desconhecido: %s", args[0])
	}
}

// orderFile baixa um documento PDF ligado a um pedido.
func (a *app) orderFile(ctx context.Context, args []string, kind string, download func(context.Context, int) ([]byte, error)) error {
	fs := flag.NewFlagSet("order "+kind, flag.ExitOnError)
	id := fs.Int("id", 0, "id do pedido")
	out := fs.String("out", "", "arquivo de saída")
	_ = fs.Parse(args)
	if *id < 1 {
		return errors.New("requer -id")
	}
	data, err := download(ctx, *id)
	if err != nil {
		return err
	}
	name := *out
	if name == "" {
		name = fmt.Sprintf("%s-%d.pdf", kind, *id)
	}
	return writeFile(name, data)
}

func (a *app) cashflowCmd(ctx context.Context, args []string) error {
	if len(args) >= 1 && args[0] == "summary" {
		f, err := parseListFilter("cashflow", args[1:])
		if err != nil {
			return err
		}
		// Agrega todas as páginas do período.
		var entries []entity.CashFlow
		for {
			resp, err := a.cashFlow.List(ctx, f)
			if err != nil {
				return err
			}
			entries = append(entries, resp.Data...)
			if resp.Cursor == "" {
				break
			}
			f.Cursor = resp.Cursor
		}
		s := cashflow.Summarize(entries)
		return printJSON(map[string]string{
			"entradasPrevistas":  s.ExpectedIn.StringFixed(2),
			"saidasPrevistas":    s.ExpectedOut.StringFixed(2),
			"entradasRealizadas": s.RealizedIn.StringFixed(2),
			"saidasRealizadas":   s.RealizedOut.StringFixed(2),
			"saldoPrevisto":      s.Balance().StringFixed(2),
			"saldoRealizado":     s.RealizedBalance().StringFixed(2),
		})
	}
	return runResource(ctx, "cashflow", args, a.cashFlow.List, a.cashFlow.Get)
}

// ── Auxiliares ────────────────────────────────────────────────────────────────

func parseListFilter(name string, args []string) (dto.ListFilter, error) {
	fs := flag.NewFlagSet(name+" list", flag.ExitOnError)
	pageSize := fs.Int("page-size", 0, "tamanho da página")
	cursor := fs.String("cursor", "", "cursor de continuação da página anterior")
	start := fs.String("start", "", "data inicial (yyyy-MM-dd)")
	end := fs.String("end", "", "data final (yyyy-MM-dd)")
	status := fs.Int("status", -1, "filtro de status")
	customer := fs.Int("customer", 0, "filtro por id de cliente")
	search := fs.String("search", "", "busca textual")
	if err := fs.Parse(args); err != nil {
		return dto.ListFilter{}, err
	}
	f := dto.ListFilter{
		PageSize:   *pageSize,
		Cursor:     *cursor,
		StartDate:  *start,
		EndDate:    *end,
		CustomerID: *customer,
		Search:     *search,
	}
	if *status >= 0 {
		f.Status = status
	}
	return f, nil
}

func parseID(name string, args []string) (int, error) {
	fs := flag.NewFlagSet(name+" get", flag.ExitOnError)
	id := fs.Int("id", 0, "id do registro")
	if err := fs.Parse(args); err != nil {
		return 0, err
	}
	if *id < 1 {
		return 0, fmt.Errorf("%s get requer -id", name)
	}
	return *id, nil
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func writeFile(name string, data []byte) error {
	if err := os.WriteFile(name, data, 0o644); err != nil {
		return err
	}
	fmt.Printf("gravado %s (%d bytes)\n", name, len(data))
	return nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "erro:", err)
	os.Exit(1)
}
