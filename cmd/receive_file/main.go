// receive_file procesa un BOD OAGIS guardado en disco contra la base configurada e
// imprime el resultado en JSON. Sirve para reprocesar mensajes que el WMS no pudo entregar.
//
// Uso: go run ./cmd/receive_file -kind po|rma|sync [-user login] ruta/documento.xml
// Código de salida: 0 éxito, 1 procesado con errores, 2 documento ilegible o uso inválido.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/inventario-oagis/internal/application/dto"
	"github.com/jhoicas/inventario-oagis/internal/application/inventory"
	"github.com/jhoicas/inventario-oagis/internal/application/oagis"
	inframail "github.com/jhoicas/inventario-oagis/internal/infrastructure/mail"
	infrapdf "github.com/jhoicas/inventario-oagis/internal/infrastructure/pdf"
	"github.com/jhoicas/inventario-oagis/internal/infrastructure/postgres"
	"github.com/jhoicas/inventario-oagis/pkg/config"
	"github.com/jhoicas/inventario-oagis/pkg/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	kind := flag.String("kind", "", "tipo de documento: po, rma o sync")
	user := flag.String("user", "", "identidad que ejecuta las operaciones (opcional)")
	flag.Parse()
	if flag.NArg() != 1 || (*kind != "po" && *kind != "rma" && *kind != "sync") {
		fmt.Fprintln(os.Stderr, "Uso: receive_file -kind po|rma|sync [-user login] ruta/documento.xml")
		return 2
	}

	body, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer documento: %v\n", err)
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		return 2
	}
	// Los logs van a stderr para no mezclarse con el JSON del resultado
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Output: os.Stderr})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		return 2
	}
	defer pool.Close()

	receiveInventoryUC := inventory.NewReceiveInventoryUseCase(
		postgres.NewTxRunner(pool),
		postgres.NewProductRepository(pool),
		postgres.NewInventoryItemRepository(pool),
	)
	var notifier oagis.Notifier = inframail.NewLogNotifier(log)
	if cfg.SMTP.Enabled() {
		notifier = inframail.NewSMTPNotifier(cfg.SMTP, infrapdf.NewMarotoReportRenderer(), log)
	}
	svc := oagis.NewService(
		postgres.NewUserLoginRepository(pool),
		postgres.NewOagisMessageRepository(pool),
		receiveInventoryUC,
		receiveInventoryUC,
		postgres.NewFacilityContactRepository(pool),
		postgres.NewEmailSettingRepository(pool),
		notifier,
		oagis.Settings{
			SyncFacilityID:             cfg.OAGIS.SyncFacilityID,
			PoReceiptFacilityID:        cfg.OAGIS.PoReceiptFacilityID,
			ReturnReceiptLocationSeqID: cfg.OAGIS.ReturnReceiptLocationSeqID,
			SyncUserLoginID:            cfg.OAGIS.SyncUserLoginID,
			AckUserLoginID:             cfg.OAGIS.AckUserLoginID,
			ProductStoreID:             cfg.OAGIS.ProductStoreID,
			ConfirmEmailType:           cfg.OAGIS.ConfirmEmailType,
		},
		log,
	)

	req := oagis.Request{Body: body, UserLoginID: *user}
	var res oagis.Result
	switch *kind {
	case "po":
		res = svc.ReceivePoAcknowledge(ctx, req)
	case "rma":
		res = svc.ReceiveRmaAcknowledge(ctx, req)
	default:
		res = svc.SyncInventory(ctx, req)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(dto.NewOagisResultResponse(res)); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir resultado: %v\n", err)
		return 2
	}

	switch {
	case res.Failed():
		return 2
	case !res.Success:
		return 1
	}
	return 0
}
