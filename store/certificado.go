package store

import (
	"context"
	"time"

	"revtec/models"
)

const columnasCertificado = `id_certificado, id_inspeccion, numero_certificado, fecha_emision, fecha_vencimiento, ruta_archivo_digital, estado_certificado`

func escanearCertificado(fila interface{ Scan(...interface{}) error }) (models.Certificado, error) {
	var c models.Certificado
	err := fila.Scan(&c.IDCertificado, &c.IDInspeccion, &c.NumeroCertificado,
		&c.FechaEmision, &c.FechaVencimiento, &c.RutaArchivoDigital, &c.EstadoCertificado)
	return c, err
}

// InsertarCertificado registra un certificado y devuelve su identificador.
func (a *Almacen) InsertarCertificado(ctx context.Context, c models.Certificado) (int, error) {
	query := `INSERT INTO certificados (id_inspeccion, numero_certificado, fecha_emision, fecha_vencimiento, ruta_archivo_digital, estado_certificado)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id_certificado`
	var id int
	err := a.ej.QueryRowContext(ctx, query, c.IDInspeccion, c.NumeroCertificado, c.FechaEmision,
		c.FechaVencimiento, c.RutaArchivoDigital, c.EstadoCertificado).Scan(&id)
	return id, err
}

// ObtenerCertificado devuelve el certificado por id, o ErrNoRows.
func (a *Almacen) ObtenerCertificado(ctx context.Context, id int) (models.Certificado, error) {
	query := `SELECT ` + columnasCertificado + ` FROM certificados WHERE id_certificado = $1`
	return escanearCertificado(a.ej.QueryRowContext(ctx, query, id))
}

// ListarCertificados devuelve todos los certificados.
func (a *Almacen) ListarCertificados(ctx context.Context) ([]models.Certificado, error) {
	return a.listarCertificados(ctx, `SELECT `+columnasCertificado+` FROM certificados ORDER BY id_certificado`)
}

// ListarCertificadosVigentes devuelve los certificados válidos cuyo
// vencimiento es estrictamente posterior al instante dado.
func (a *Almacen) ListarCertificadosVigentes(ctx context.Context, ahora time.Time) ([]models.Certificado, error) {
	query := `SELECT ` + columnasCertificado + ` FROM certificados
		WHERE estado_certificado = 'valido' AND fecha_vencimiento > $1 ORDER BY fecha_vencimiento`
	return a.listarCertificados(ctx, query, ahora)
}

func (a *Almacen) listarCertificados(ctx context.Context, query string, args ...interface{}) ([]models.Certificado, error) {
	rows, err := a.ej.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var certificados []models.Certificado
	for rows.Next() {
		c, err := escanearCertificado(rows)
		if err != nil {
			return nil, err
		}
		certificados = append(certificados, c)
	}
	return certificados, rows.Err()
}

// ExisteCertificadoPorInspeccion indica si la inspección ya tiene
// certificado emitido.
func (a *Almacen) ExisteCertificadoPorInspeccion(ctx context.Context, idInspeccion int) (bool, error) {
	var existe bool
	err := a.ej.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM certificados WHERE id_inspeccion = $1)`, idInspeccion).Scan(&existe)
	return existe, err
}

// ExisteNumeroCertificado indica si algún certificado ya usa el número.
func (a *Almacen) ExisteNumeroCertificado(ctx context.Context, numero string) (bool, error) {
	var existe bool
	err := a.ej.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM certificados WHERE numero_certificado = $1)`, numero).Scan(&existe)
	return existe, err
}

// AnularCertificado cambia el estado a anulado. Los certificados nunca
// se borran.
func (a *Almacen) AnularCertificado(ctx context.Context, id int) error {
	_, err := a.ej.ExecContext(ctx, `UPDATE certificados SET estado_certificado = 'anulado' WHERE id_certificado = $1`, id)
	return err
}

// ActualizarRutaArchivo guarda la ruta del archivo digital generado.
func (a *Almacen) ActualizarRutaArchivo(ctx context.Context, id int, ruta string) error {
	_, err := a.ej.ExecContext(ctx, `UPDATE certificados SET ruta_archivo_digital = $1 WHERE id_certificado = $2`, ruta, id)
	return err
}
