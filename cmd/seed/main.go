// Command seed provisions the bootstrap users the API needs on a fresh
// database: one administrador and one docente. The command is idempotent
// and safe to run repeatedly: users that already exist with the expected
// password are skipped, drifted users are re-hashed and reactivated, and
// missing users are created.
package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/IUDAlexis/peliculas-api/internal/config"
	"github.com/IUDAlexis/peliculas-api/internal/database"
	"github.com/IUDAlexis/peliculas-api/internal/model"
	"github.com/IUDAlexis/peliculas-api/internal/repository"
	"github.com/IUDAlexis/peliculas-api/internal/utils"
)

type seedUser struct {
	Nombre   string
	Email    string
	Password string
	Rol      model.Rol
}

var seedUsers = []seedUser{
	{Nombre: "Administrador", Email: "admin@demo.com", Password: "Admin123!", Rol: model.RolAdministrador},
	{Nombre: "Docente Test", Email: "docente@test.com", Password: "Docente123!", Rol: model.RolDocente},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := config.Load()
	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer db.Close()

	usuarios := repository.NewUsuarioRepo(db)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, su := range seedUsers {
		if err := seedOne(ctx, usuarios, cfg.BcryptCost, su); err != nil {
			log.Fatalf("seed %s failed: %v", su.Email, err)
		}
	}
	log.Println("seed completed")
}

func seedOne(ctx context.Context, usuarios *repository.UsuarioRepo, cost int, su seedUser) error {
	existing, err := usuarios.GetByEmail(ctx, su.Email)
	switch {
	case err == nil:
		if utils.VerifyPassword(existing.PasswordHash, su.Password) {
			log.Printf("%s already exists with the expected password", su.Email)
			return nil
		}
		// Drifted: restore the known password, role and active state.
		hash, err := utils.HashPassword(su.Password, cost)
		if err != nil {
			return err
		}
		estado := model.EstadoActivo
		rol := su.Rol
		_, err = usuarios.Update(ctx, existing.ID, model.UsuarioUpdate{
			PasswordHash: &hash,
			Rol:          &rol,
			Estado:       &estado,
		})
		if err != nil {
			return err
		}
		log.Printf("%s updated", su.Email)
		return nil
	case errors.Is(err, repository.ErrNotFound):
		hash, err := utils.HashPassword(su.Password, cost)
		if err != nil {
			return err
		}
		u := &model.Usuario{
			Nombre:       su.Nombre,
			Email:        su.Email,
			PasswordHash: hash,
			Rol:          su.Rol,
			Estado:       model.EstadoActivo,
		}
		if err := usuarios.Create(ctx, u); err != nil {
			return err
		}
		log.Printf("%s created", su.Email)
		return nil
	default:
		return err
	}
}
