package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/light-bringer/freshmart/internal/app/inventory/domain"
	"github.com/light-bringer/freshmart/internal/app/inventory/queries/list_products"
	"github.com/light-bringer/freshmart/internal/app/inventory/usecases/add_product"
	"github.com/light-bringer/freshmart/internal/app/inventory/usecases/add_to_order"
	"github.com/light-bringer/freshmart/internal/app/inventory/usecases/generate_receipt"
	"github.com/light-bringer/freshmart/internal/app/inventory/usecases/remove_product"
)

const (
	prompt    = "freshmart> "
	aboutText = "FreshMart Inventory Management System\nVersion 1.0"
)

const usage = `Commands:
  add <name> <price> <quantity>   add a product to the catalog
  remove <name>                   remove a product from the catalog
  list                            show the catalog
  order <name> <quantity>         add a catalog product to the current order
  clear                           empty the current order
  receipt                         print the receipt for the current order
  about                           show version information
  help                            show this help
  exit                            leave
Quote names that contain spaces: add "Whole Milk" 2.49 10`

// Handler runs shell commands against the catalog and the session order.
// It's a thin coordinator that delegates to use cases and queries.
type Handler struct {
	// Commands
	addProduct      *add_product.Interactor
	removeProduct   *remove_product.Interactor
	addToOrder      *add_to_order.Interactor
	generateReceipt *generate_receipt.Interactor

	// Queries
	listProducts *list_products.Query

	order  *domain.Order
	out    io.Writer
	logger *zap.Logger
}

// NewHandler creates a handler with a fresh, empty order.
func NewHandler(
	addProduct *add_product.Interactor,
	removeProduct *remove_product.Interactor,
	addToOrder *add_to_order.Interactor,
	generateReceipt *generate_receipt.Interactor,
	listProducts *list_products.Query,
	out io.Writer,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		addProduct:      addProduct,
		removeProduct:   removeProduct,
		addToOrder:      addToOrder,
		generateReceipt: generateReceipt,
		listProducts:    listProducts,
		order:           domain.NewOrder(),
		out:             out,
		logger:          logger.Named("shell"),
	}
}

// Order exposes the session order.
func (h *Handler) Order() *domain.Order {
	return h.order
}

// Run reads commands from in until exit or EOF. The prompt is printed only
// when interactive is set.
func (h *Handler) Run(ctx context.Context, in io.Reader, interactive bool) error {
	h.logger.Info("session started", zap.String("order_id", h.order.ID()))

	scanner := bufio.NewScanner(in)
	for {
		if interactive {
			fmt.Fprint(h.out, prompt)
		}
		if !scanner.Scan() {
			break
		}
		if quit := h.Execute(ctx, scanner.Text()); quit {
			return nil
		}
	}
	return scanner.Err()
}

// Execute runs one command line. It reports whether the shell should stop.
// Failures are printed, never returned: the session survives any bad input.
func (h *Handler) Execute(ctx context.Context, line string) bool {
	args, err := splitArgs(line)
	if err != nil {
		h.printError(err)
		return false
	}
	if len(args) == 0 {
		return false
	}

	cmd, args := strings.ToLower(args[0]), args[1:]
	switch cmd {
	case "add":
		h.handleAddProduct(ctx, args)
	case "remove", "rm":
		h.handleRemoveProduct(ctx, args)
	case "list", "ls":
		h.handleListProducts(ctx, args)
	case "order":
		h.handleAddToOrder(ctx, args)
	case "clear":
		h.handleClearOrder(args)
	case "receipt":
		h.handleGenerateReceipt(ctx, args)
	case "about":
		fmt.Fprintln(h.out, aboutText)
	case "help", "?":
		fmt.Fprintln(h.out, usage)
	case "exit", "quit":
		return true
	default:
		h.printError(fmt.Errorf("%w %q (try help)", errUnknownCommand, cmd))
	}
	return false
}

func (h *Handler) handleAddProduct(ctx context.Context, args []string) {
	req, err := parseAddProductArgs(args)
	if err != nil {
		h.printError(err)
		return
	}

	product, err := h.addProduct.Execute(ctx, req)
	if err != nil {
		h.printError(err)
		return
	}

	fmt.Fprintf(h.out, "Added product: %s, Price: %s, Quantity: %d\n",
		product.Name(), product.Price().Decimal(), product.Quantity())
}

func (h *Handler) handleRemoveProduct(ctx context.Context, args []string) {
	name, err := parseRemoveProductArgs(args)
	if err != nil {
		h.printError(err)
		return
	}

	if err := h.removeProduct.Execute(ctx, name); err != nil {
		h.printError(err)
		return
	}

	fmt.Fprintf(h.out, "Removed product: %s\n", name)
}

func (h *Handler) handleListProducts(ctx context.Context, args []string) {
	if err := expectArgs(args, 0, "list"); err != nil {
		h.printError(err)
		return
	}

	products, err := h.listProducts.Execute(ctx)
	if err != nil {
		h.printError(err)
		return
	}
	if len(products) == 0 {
		fmt.Fprintln(h.out, "No products")
		return
	}

	tw := tabwriter.NewWriter(h.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tPRICE\tQUANTITY")
	for _, p := range products {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", p.Name(), p.Price(), p.Quantity())
	}
	_ = tw.Flush()
}

func (h *Handler) handleAddToOrder(ctx context.Context, args []string) {
	req, err := parseAddToOrderArgs(args)
	if err != nil {
		h.printError(err)
		return
	}

	if _, err := h.addToOrder.Execute(ctx, h.order, req); err != nil {
		h.printError(err)
		return
	}

	fmt.Fprintf(h.out, "Added %d %s to order\n", req.Quantity, req.Name)
}

func (h *Handler) handleClearOrder(args []string) {
	if err := expectArgs(args, 0, "clear"); err != nil {
		h.printError(err)
		return
	}

	h.order.Clear()
	h.logger.Info("order cleared", zap.String("order_id", h.order.ID()))
	fmt.Fprintln(h.out, "Order cleared")
}

func (h *Handler) handleGenerateReceipt(ctx context.Context, args []string) {
	if err := expectArgs(args, 0, "receipt"); err != nil {
		h.printError(err)
		return
	}

	receipt, err := h.generateReceipt.Execute(ctx, h.order)
	if err != nil {
		h.printError(err)
		return
	}

	fmt.Fprintln(h.out, receipt)
}

func (h *Handler) printError(err error) {
	level, msg := describeError(err)
	if level == levelError {
		h.logger.Debug("command failed", zap.Error(err))
	}
	fmt.Fprintf(h.out, "%s: %s\n", level, msg)
}
