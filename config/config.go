// Package config inicializa las conexiones externas: PostgreSQL para
// los datos del sistema y MongoDB (GridFS) para los archivos digitales
// de los certificados.
package config

import (
	"context"
	"database/sql"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CargarEntorno lee el archivo .env si existe. En producción las
// variables vienen del entorno y la ausencia del archivo no es error.
func CargarEntorno() {
	if err := godotenv.Load(); err != nil {
		log.Println("No se encontró archivo .env, usando variables de entorno")
	}
}

func entornoODefecto(clave, defecto string) string {
	if valor := os.Getenv(clave); valor != "" {
		return valor
	}
	return defecto
}

// InitializeDatabase configura la conexión a PostgreSQL.
func InitializeDatabase() *sql.DB {
	connStr := entornoODefecto("DATABASE_URL", "user=postgres dbname=revtec password=postgres sslmode=disable")
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal("Error al conectar a la base de datos:", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatal("Error al verificar la conexión a la base de datos:", err)
	}
	return db
}

// InitializeMongoDBClient inicializa el cliente de MongoDB y el bucket
// de GridFS donde se archivan los certificados.
func InitializeMongoDBClient() (*mongo.Client, *mongo.Database, *gridfs.Bucket) {
	uri := entornoODefecto("MONGODB_URI", "mongodb://localhost:27017")
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatal(err)
	}

	if err := client.Ping(context.Background(), nil); err != nil {
		log.Fatal(err)
	}

	database := client.Database(entornoODefecto("MONGODB_DATABASE", "revtec"))

	bucket, err := gridfs.NewBucket(database, options.GridFSBucket().SetName("certificados"))
	if err != nil {
		log.Fatal(err)
	}

	return client, database, bucket
}

// PuertoServidor devuelve el puerto de escucha HTTP.
func PuertoServidor() string {
	return entornoODefecto("PORT", "8080")
}
