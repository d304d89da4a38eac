package main

import (
	"context"
	"log"
	"net/http"

	gorillahandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"revtec/config"
	"revtec/handlers"
	"revtec/middleware"
	"revtec/services"
	"revtec/store"
	"revtec/store/migrations"
)

func main() {
	config.CargarEntorno()

	// Inicializar la base de datos y el cliente MongoDB
	db := config.InitializeDatabase()
	defer db.Close()

	if err := migrations.Aplicar(db); err != nil {
		log.Fatal("Error al aplicar las migraciones:", err)
	}

	client, _, bucket := config.InitializeMongoDBClient()
	defer client.Disconnect(context.Background())

	almacen := store.NuevoAlmacen(db)
	servicio := services.NuevoServicio(almacen).
		ConArchivador(services.NuevoArchivador(bucket)).
		ConNotificador(services.NuevoNotificadorDesdeEntorno())

	// Crear un enrutador y configurar rutas
	r := mux.NewRouter()
	registrarRutas(r, servicio)

	// Configuración de CORS usando handlers.CORS
	corsHandler := gorillahandlers.CORS(
		gorillahandlers.AllowedOrigins([]string{"*"}),
		gorillahandlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		gorillahandlers.AllowedHeaders([]string{"Content-Type"}),
	)(middleware.LoggingMiddleware(r))

	puerto := config.PuertoServidor()
	log.Printf("Servidor escuchando en http://localhost:%s...", puerto)
	log.Fatal(http.ListenAndServe(":"+puerto, corsHandler))
}

func registrarRutas(r *mux.Router, s *services.Servicio) {
	con := func(h func(http.ResponseWriter, *http.Request, *services.Servicio)) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			h(w, r, s)
		}
	}

	r.HandleFunc("/salud", con(handlers.Salud)).Methods("GET")

	r.HandleFunc("/usuarios", con(handlers.ListarUsuarios)).Methods("GET")
	r.HandleFunc("/usuarios", con(handlers.CrearUsuario)).Methods("POST")
	r.HandleFunc("/usuarios/login", con(handlers.Login)).Methods("POST")
	r.HandleFunc("/usuarios/{id:[0-9]+}", con(handlers.ObtenerUsuario)).Methods("GET")
	r.HandleFunc("/usuarios/{id:[0-9]+}", con(handlers.ActualizarUsuario)).Methods("PUT")
	r.HandleFunc("/usuarios/{id:[0-9]+}", con(handlers.EliminarUsuario)).Methods("DELETE")

	r.HandleFunc("/estaciones", con(handlers.ListarEstaciones)).Methods("GET")
	r.HandleFunc("/estaciones", con(handlers.CrearEstacion)).Methods("POST")
	r.HandleFunc("/estaciones/{id:[0-9]+}", con(handlers.ObtenerEstacion)).Methods("GET")
	r.HandleFunc("/estaciones/{id:[0-9]+}", con(handlers.ActualizarEstacion)).Methods("PUT")
	r.HandleFunc("/estaciones/{id:[0-9]+}", con(handlers.EliminarEstacion)).Methods("DELETE")

	r.HandleFunc("/vehiculos", con(handlers.ListarVehiculos)).Methods("GET")
	r.HandleFunc("/vehiculos", con(handlers.CrearVehiculo)).Methods("POST")
	r.HandleFunc("/vehiculos/porPropietario/{id:[0-9]+}", con(handlers.ListarVehiculosPorPropietario)).Methods("GET")
	r.HandleFunc("/vehiculos/{id:[0-9]+}", con(handlers.ObtenerVehiculo)).Methods("GET")
	r.HandleFunc("/vehiculos/{id:[0-9]+}", con(handlers.ActualizarVehiculo)).Methods("PUT")
	r.HandleFunc("/vehiculos/{id:[0-9]+}", con(handlers.EliminarVehiculo)).Methods("DELETE")

	r.HandleFunc("/citas", con(handlers.ListarCitas)).Methods("GET")
	r.HandleFunc("/citas", con(handlers.CrearCita)).Methods("POST")
	r.HandleFunc("/citas/porVehiculo/{id:[0-9]+}", con(handlers.ListarCitasPorVehiculo)).Methods("GET")
	r.HandleFunc("/citas/porEstacion/{id:[0-9]+}", con(handlers.ListarCitasPorEstacion)).Methods("GET")
	r.HandleFunc("/citas/{id:[0-9]+}", con(handlers.ObtenerCita)).Methods("GET")
	r.HandleFunc("/citas/{id:[0-9]+}", con(handlers.ActualizarCita)).Methods("PUT")
	r.HandleFunc("/citas/{id:[0-9]+}", con(handlers.EliminarCita)).Methods("DELETE")

	r.HandleFunc("/inspecciones", con(handlers.ListarInspecciones)).Methods("GET")
	r.HandleFunc("/inspecciones", con(handlers.CrearInspeccion)).Methods("POST")
	r.HandleFunc("/inspecciones/{id:[0-9]+}", con(handlers.ObtenerInspeccion)).Methods("GET")
	r.HandleFunc("/inspecciones/{id:[0-9]+}", con(handlers.ActualizarInspeccion)).Methods("PUT")
	r.HandleFunc("/inspecciones/{id:[0-9]+}", con(handlers.EliminarInspeccion)).Methods("DELETE")

	r.HandleFunc("/detalles", con(handlers.ListarDetalles)).Methods("GET")
	r.HandleFunc("/detalles", con(handlers.CrearDetalle)).Methods("POST")
	r.HandleFunc("/detalles/porInspeccion/{id:[0-9]+}", con(handlers.ListarDetallesPorInspeccion)).Methods("GET")
	r.HandleFunc("/detalles/{id:[0-9]+}", con(handlers.ObtenerDetalle)).Methods("GET")
	r.HandleFunc("/detalles/{id:[0-9]+}", con(handlers.ActualizarDetalle)).Methods("PUT")
	r.HandleFunc("/detalles/{id:[0-9]+}", con(handlers.EliminarDetalle)).Methods("DELETE")

	r.HandleFunc("/certificados", con(handlers.ListarCertificados)).Methods("GET")
	r.HandleFunc("/certificados", con(handlers.CrearCertificado)).Methods("POST")
	r.HandleFunc("/certificados/vigentes", con(handlers.ListarCertificadosVigentes)).Methods("GET")
	r.HandleFunc("/certificados/{id:[0-9]+}", con(handlers.ObtenerCertificado)).Methods("GET")
	r.HandleFunc("/certificados/{id:[0-9]+}/anular", con(handlers.AnularCertificado)).Methods("POST")
	// Un certificado emitido nunca se borra; DELETE lo anula.
	r.HandleFunc("/certificados/{id:[0-9]+}", con(handlers.AnularCertificado)).Methods("DELETE")
	r.HandleFunc("/certificados/{id:[0-9]+}/archivo", con(handlers.DescargarArchivoCertificado)).Methods("GET")
}
