package handlers

import (
	"math"
	"strconv"

	"ecommerce/internal/domain"
	"ecommerce/internal/domain/models"
	"ecommerce/internal/query"
	"ecommerce/internal/services"
	"ecommerce/internal/validate"
)

var (
	roles      = []string{models.RoleUser, models.RoleAdmin}
	sortOrders = []string{string(domain.SortAsc), string(domain.SortDesc)}
	stockOps   = []string{string(models.StockSet), string(models.StockIncrement), string(models.StockDecrement)}
)

// maxEmailLen matches the users.email column.
const maxEmailLen = 255

// paginationSchema reads page/limit/sortBy/sortOrder. page and limit fall back
// to their defaults when missing, unparsable or zero; parsed values out of
// range are rejected. sortBy must be one of the resource's sortable keys.
func paginationSchema(s *validate.Schema, sorts query.Sorts) domain.PageParams {
	page := s.IntOr("page", domain.DefaultPage).
		Min(1, "page debe ser mayor o igual a 1").
		Max(domain.MaxPage, "page es demasiado grande").
		Value()
	limit := s.IntOr("limit", domain.DefaultLimit).
		Min(1, "limit debe ser mayor o igual a 1").
		Max(domain.MaxLimit, "limit no puede ser mayor que 100").
		Value()
	sortBy := s.String("sortBy").Trim().OmitEmpty().
		OneOf(sorts.Keys(), "").
		Value()
	order := s.String("sortOrder").
		OneOf(sortOrders, "sortOrder debe ser asc o desc").
		Default(string(domain.SortAsc)).
		Value()

	return domain.PageParams{
		Page:      page,
		Limit:     limit,
		SortBy:    sortBy,
		SortOrder: domain.SortOrder(order),
	}
}

// idSchema reads a positive integer path id. Any malformed value reports the
// same message.
func idSchema(s *validate.Schema, name string) int64 {
	raw := s.String(name).Trim().Required("ID es requerido").Value()
	if s.Failed(name) {
		return 0
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		s.Fail(name, "ID debe ser un número positivo")
		return 0
	}
	return id
}

// ---- users ----

func userFilterSchema(s *validate.Schema) models.UserFilter {
	return models.UserFilter{
		Role:          s.String("role").OneOf(roles, "role debe ser USER o ADMIN").Ptr(),
		IsActive:      s.Flag("isActive"),
		EmailVerified: s.Flag("emailVerified"),
		Search:        s.String("search").Trim().Value(),
	}
}

func firstNameField(s *validate.Schema) *validate.String {
	return s.String("firstName").Trim().
		Min(2, "El nombre debe tener al menos 2 caracteres").
		Max(50, "El nombre es demasiado largo")
}

func lastNameField(s *validate.Schema) *validate.String {
	return s.String("lastName").Trim().
		Min(2, "El apellido debe tener al menos 2 caracteres").
		Max(50, "El apellido es demasiado largo")
}

func createUserSchema(s *validate.Schema) services.CreateUserInput {
	return services.CreateUserInput{
		Email: s.String("email").Trim().
			Required("Email es requerido").
			Max(maxEmailLen, "El email es demasiado largo").
			Email("Email inválido").
			Value(),
		Password: s.String("password").
			Required("La contraseña es requerida").
			Min(6, "La contraseña debe tener al menos 6 caracteres").
			Max(100, "La contraseña es demasiado larga").
			Value(),
		FirstName: firstNameField(s).Required("El nombre es requerido").Value(),
		LastName:  lastNameField(s).Required("El apellido es requerido").Value(),
		Role: s.String("role").
			OneOf(roles, "role debe ser USER o ADMIN").
			Default(models.RoleUser).
			Value(),
	}
}

func updateUserSchema(s *validate.Schema) models.UserUpdate {
	return models.UserUpdate{
		Email:         s.String("email").Trim().Max(maxEmailLen, "El email es demasiado largo").Email("Email inválido").Ptr(),
		FirstName:     firstNameField(s).Ptr(),
		LastName:      lastNameField(s).Ptr(),
		IsActive:      s.Bool("isActive").Ptr(),
		EmailVerified: s.Bool("emailVerified").Ptr(),
	}
}

type changePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

func changePasswordSchema(s *validate.Schema) changePasswordInput {
	return changePasswordInput{
		CurrentPassword: s.String("currentPassword").
			Required("Contraseña actual es requerida").
			Value(),
		NewPassword: s.String("newPassword").
			Required("La nueva contraseña es requerida").
			Min(6, "La nueva contraseña debe tener al menos 6 caracteres").
			Max(100, "La nueva contraseña es demasiado larga").
			Value(),
	}
}

type credentialsInput struct {
	Email    string
	Password string
}

func credentialsSchema(s *validate.Schema) credentialsInput {
	return credentialsInput{
		Email: s.String("email").Trim().
			Required("Email es requerido").
			Email("Email inválido").
			Value(),
		Password: s.String("password").
			Required("Contraseña es requerida").
			Value(),
	}
}

// ---- products ----

func productFilterSchema(s *validate.Schema) models.ProductFilter {
	f := models.ProductFilter{
		Category:   s.String("category").Trim().OmitEmpty().Ptr(),
		Brand:      s.String("brand").Trim().OmitEmpty().Ptr(),
		MinPrice:   s.Float("minPrice").Min(0, "minPrice debe ser mayor o igual a 0").Ptr(),
		MaxPrice:   s.Float("maxPrice").Min(0, "maxPrice debe ser mayor o igual a 0").Ptr(),
		IsActive:   s.Flag("isActive"),
		IsFeatured: s.Flag("isFeatured"),
		Search:     s.String("search").Trim().Value(),
	}
	if f.MinPrice != nil && f.MaxPrice != nil && *f.MinPrice > *f.MaxPrice {
		s.Fail("maxPrice", "maxPrice debe ser mayor o igual que minPrice")
	}
	return f
}

func dimensionsSchema(s *validate.Schema) *models.Dimensions {
	d, ok := s.Object("dimensions")
	if !ok {
		return nil
	}
	return &models.Dimensions{
		Length: d.Float("length").Positive("El largo debe ser positivo").Ptr(),
		Width:  d.Float("width").Positive("El ancho debe ser positivo").Ptr(),
		Height: d.Float("height").Positive("La altura debe ser positiva").Ptr(),
	}
}

// productFields declares the rules shared by create and update; required
// reports whether create-only presence rules apply.
type productFields struct {
	name        *validate.String
	description *validate.String
	price       *validate.Float
	stock       *validate.Int
	sku         *validate.String
	category    *validate.String
	brand       *validate.String
	images      *validate.StringList
	isFeatured  *validate.Bool
	weight      *validate.Float
	tags        *validate.StringList
	dimensions  *models.Dimensions
}

func productFieldsSchema(s *validate.Schema, required bool) productFields {
	f := productFields{
		name:        s.String("name").Trim(),
		description: s.String("description").Trim().Max(1000, "La descripción es demasiado larga"),
		price:       s.Float("price"),
		stock:       s.Int("stock"),
		sku:         s.String("sku").Trim(),
		category:    s.String("category").Trim(),
		brand:       s.String("brand").Trim().Max(50, "La marca es demasiado larga"),
		images: s.Strings("images").
			MaxItems(10, "Máximo 10 imágenes").
			Items(1, 500, "Cada imagen debe tener entre 1 y 500 caracteres"),
		isFeatured: s.Bool("isFeatured"),
		weight:     s.Float("weight").Positive("El peso debe ser positivo"),
		tags: s.Strings("tags").
			MaxItems(20, "Máximo 20 etiquetas").
			Items(1, 50, "Cada etiqueta debe tener entre 1 y 50 caracteres"),
		dimensions: dimensionsSchema(s),
	}
	if required {
		f.name.Required("El nombre es requerido")
		f.price.Required("El precio es requerido")
		f.stock.Required("El stock es requerido")
		f.sku.Required("El SKU es requerido")
		f.category.Required("La categoría es requerida")
	}
	f.name.Min(2, "El nombre debe tener al menos 2 caracteres").Max(100, "El nombre es demasiado largo")
	f.price.Positive("El precio debe ser positivo").Max(99999999.99, "El precio es demasiado alto")
	f.stock.Min(0, "El stock no puede ser negativo").Max(math.MaxInt32, "El stock es demasiado alto")
	f.sku.Min(3, "El SKU debe tener al menos 3 caracteres").Max(50, "El SKU es demasiado largo")
	f.category.Min(2, "La categoría debe tener al menos 2 caracteres").Max(50, "La categoría es demasiado larga")
	return f
}

func createProductSchema(s *validate.Schema) models.Product {
	f := productFieldsSchema(s, true)
	return models.Product{
		Name:        f.name.Value(),
		Description: f.description.OmitEmpty().Ptr(),
		Price:       f.price.Value(),
		Stock:       f.stock.Value(),
		SKU:         f.sku.Value(),
		Category:    f.category.Value(),
		Brand:       f.brand.OmitEmpty().Ptr(),
		Images:      f.images.Value(),
		IsFeatured:  f.isFeatured.Default(false).Value(),
		Weight:      f.weight.Ptr(),
		Dimensions:  f.dimensions,
		Tags:        f.tags.Value(),
	}
}

func updateProductSchema(s *validate.Schema) models.ProductUpdate {
	f := productFieldsSchema(s, false)
	return models.ProductUpdate{
		Name:        f.name.Ptr(),
		Description: f.description.Ptr(),
		Price:       f.price.Ptr(),
		Stock:       f.stock.Ptr(),
		SKU:         f.sku.Ptr(),
		Category:    f.category.Ptr(),
		Brand:       f.brand.Ptr(),
		Images:      f.images.Ptr(),
		IsActive:    s.Bool("isActive").Ptr(),
		IsFeatured:  f.isFeatured.Ptr(),
		Weight:      f.weight.Ptr(),
		Dimensions:  f.dimensions,
		Tags:        f.tags.Ptr(),
	}
}

type stockInput struct {
	Quantity  int
	Operation models.StockOperation
}

func updateStockSchema(s *validate.Schema) stockInput {
	return stockInput{
		Quantity: s.Int("quantity").
			Required("La cantidad es requerida").
			Min(0, "La cantidad no puede ser negativa").
			Max(math.MaxInt32, "La cantidad es demasiado alta").
			Value(),
		Operation: models.StockOperation(s.String("operation").
			OneOf(stockOps, "operation debe ser set, increment o decrement").
			Default(string(models.StockSet)).
			Value()),
	}
}

type stockCheckInput struct {
	ID       int64
	Quantity int
}

func stockCheckSchema(s *validate.Schema) stockCheckInput {
	return stockCheckInput{
		ID: idSchema(s, "id"),
		Quantity: s.Int("quantity").
			Required("La cantidad es requerida").
			Positive("La cantidad debe ser un número positivo").
			Max(math.MaxInt32, "La cantidad es demasiado alta").
			Value(),
	}
}

func featuredSchema(s *validate.Schema) int {
	return s.IntOr("limit", domain.DefaultLimit).
		Min(1, "limit debe ser mayor o igual a 1").
		Max(domain.MaxLimit, "limit no puede ser mayor que 100").
		Value()
}
