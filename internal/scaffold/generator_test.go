package scaffold

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testStamp = NewMigrationStamp(time.Date(2026, 10, 19, 15, 30, 0, 0, time.UTC))

func emitInput(t *testing.T, entity, spec string) EmitInput {
	t.Helper()

	names, err := DeriveNames(entity)
	require.NoError(t, err)
	fields, err := ParseFields(spec)
	require.NoError(t, err)

	return EmitInput{
		Names:  names,
		Fields: fields,
		Stamp:  testStamp,
		Layout: DefaultLayout(),
	}
}

func unitsByKind(units []GenerationUnit) map[Kind]GenerationUnit {
	m := make(map[Kind]GenerationUnit, len(units))
	for _, u := range units {
		m[u.Kind] = u
	}
	return m
}

func TestEmitProductEntity(t *testing.T) {
	in := emitInput(t, "product", "name:string,price:number,isActive?:boolean")

	unit, err := NewGenerator().EmitKind(KindModel, in)
	require.NoError(t, err)

	want := `import { Column, Entity, PrimaryGeneratedColumn } from 'typeorm';

@Entity('products')
export class Product {
  @PrimaryGeneratedColumn('uuid')
  id: string;

  @Column({ type: 'varchar', nullable: false })
  name: string;

  @Column({ type: 'decimal', nullable: false })
  price: number;

  @Column({ type: 'boolean', nullable: true })
  isActive?: boolean | null;
}
`
	assert.Equal(t, want, unit.Content)
	assert.Equal(t, "src/product/product.entity.ts", unit.Path)
}

func TestEmitProductCreateDTO(t *testing.T) {
	in := emitInput(t, "product", "name:string,price:number,isActive?:boolean")

	unit, err := NewGenerator().EmitKind(KindCreateDTO, in)
	require.NoError(t, err)

	want := `import { IsBoolean, IsNumber, IsOptional, IsString } from 'class-validator';

export class CreateProductDto {
  @IsString()
  name: string;

  @IsNumber()
  price: number;

  @IsOptional()
  @IsBoolean()
  isActive?: boolean | null;
}
`
	assert.Equal(t, want, unit.Content)
}

func TestEmitUpdateDTOMakesEveryFieldOmittable(t *testing.T) {
	in := emitInput(t, "event", "title:string,startsAt:date,endsAt?:date")

	unit, err := NewGenerator().EmitKind(KindUpdateDTO, in)
	require.NoError(t, err)

	assert.Contains(t, unit.Content, "import { IsDate, IsOptional, IsString } from 'class-validator';\n")
	assert.Contains(t, unit.Content, "import { Type } from 'class-transformer';\n")
	assert.Contains(t, unit.Content, "export class UpdateEventDto {")
	assert.Contains(t, unit.Content, "  title?: string;\n")
	assert.Contains(t, unit.Content, "  startsAt?: Date;\n")
	assert.Contains(t, unit.Content, "  endsAt?: Date | null;\n")
	assert.Equal(t, 3, strings.Count(unit.Content, "@IsOptional()"))
	assert.Equal(t, 2, strings.Count(unit.Content, "@Type(() => Date)"))
}

func TestEmitPaths(t *testing.T) {
	in := emitInput(t, "orderItem", "quantity:int")

	units, err := NewGenerator().Emit(in)
	require.NoError(t, err)
	require.Len(t, units, len(Kinds()))

	byKind := unitsByKind(units)
	assert.Equal(t, "src/order-item/order-item.entity.ts", byKind[KindModel].Path)
	assert.Equal(t, "src/order-item/dto/create-order-item.dto.ts", byKind[KindCreateDTO].Path)
	assert.Equal(t, "src/order-item/dto/update-order-item.dto.ts", byKind[KindUpdateDTO].Path)
	assert.Equal(t, "src/order-item/order-item.service.ts", byKind[KindService].Path)
	assert.Equal(t, "src/order-item/order-item.controller.ts", byKind[KindController].Path)
	assert.Equal(t, "src/migrations/2026-10-19-153000-000-create-orderItems.ts", byKind[KindMigration].Path)
	assert.Equal(t, "client/src/models/order-item.model.ts", byKind[KindClientModel].Path)
	assert.Equal(t, "client/src/services/order-item.service.ts", byKind[KindClientService].Path)
}

func TestEmitSkipClient(t *testing.T) {
	in := emitInput(t, "product", "name:string")
	in.SkipClient = true

	units, err := NewGenerator().Emit(in)
	require.NoError(t, err)
	require.Len(t, units, 6)

	for _, u := range units {
		assert.False(t, u.Kind.IsClient(), "unexpected client unit %s", u.Path)
	}
}

func TestEmitMigrationUsesOneStamp(t *testing.T) {
	in := emitInput(t, "product", "name:string,price:number,isActive?:boolean")

	unit, err := NewGenerator().EmitKind(KindMigration, in)
	require.NoError(t, err)

	className := MigrationClassName(in.Names, in.Stamp)
	assert.Equal(t, "CreateProduct1792423800000", className)
	assert.Contains(t, unit.Path, testStamp.FileLabel())
	assert.Contains(t, unit.Content, "export class "+className+" implements MigrationInterface {")
	assert.Contains(t, unit.Content, "name = '"+className+"';")
	assert.Contains(t, unit.Content, "name: 'products',")
	assert.Contains(t, unit.Content, "await queryRunner.dropTable('products');")
	assert.Contains(t, unit.Content, "            name: 'name',\n            type: 'varchar',\n            isNullable: false,\n")
	assert.Contains(t, unit.Content, "            name: 'isActive',\n            type: 'boolean',\n            isNullable: true,\n")
}

func TestEmitRoutesAgree(t *testing.T) {
	in := emitInput(t, "product", "name:string")

	units, err := NewGenerator().Emit(in)
	require.NoError(t, err)
	byKind := unitsByKind(units)

	assert.Contains(t, byKind[KindController].Content, "@Controller('products')")
	assert.Contains(t, byKind[KindClientService].Content, "const BASE_PATH = '/api/products';")
	assert.Contains(t, byKind[KindClientService].Content, "export const productService = new ProductService();")
	assert.Contains(t, byKind[KindService].Content, "private readonly productRepository: Repository<Product>,")
}

func TestEmitOnlyDerivedNames(t *testing.T) {
	in := emitInput(t, "category", "name:string,description?:string,parentId?:string")

	units, err := NewGenerator().Emit(in)
	require.NoError(t, err)

	for _, u := range units {
		assert.NotContains(t, u.Content, "Categorie", u.Path)
		assert.NotContains(t, u.Content, "category_", u.Path)
	}
}

func TestOptionalPropagation(t *testing.T) {
	in := emitInput(t, "category", "name:string,description?:string,parentId?:string")

	units, err := NewGenerator().Emit(in)
	require.NoError(t, err)
	byKind := unitsByKind(units)

	for _, kind := range []Kind{KindModel, KindCreateDTO, KindUpdateDTO, KindClientModel} {
		content := byKind[kind].Content
		assert.Contains(t, content, "description?: string | null;", kind)
		assert.Contains(t, content, "parentId?: string | null;", kind)
		assert.NotContains(t, content, "name?: string | null", kind)
		assert.NotContains(t, content, "name: string | null", kind)
	}

	model := byKind[KindModel].Content
	assert.Contains(t, model, "@Column({ type: 'varchar', nullable: true })\n  description?: string | null;")
	assert.Contains(t, model, "@Column({ type: 'varchar', nullable: false })\n  name: string;")

	migration := byKind[KindMigration].Content
	assert.Contains(t, migration, "name: 'description',\n            type: 'varchar',\n            isNullable: true,")
	assert.Contains(t, migration, "name: 'parentId',\n            type: 'varchar',\n            isNullable: true,")
	assert.Contains(t, migration, "name: 'name',\n            type: 'varchar',\n            isNullable: false,")
}

func TestTypeAgreementAcrossArtifacts(t *testing.T) {
	in := emitInput(t, "event", "bornAt:date,count:int,ref:uuid")

	units, err := NewGenerator().Emit(in)
	require.NoError(t, err)
	byKind := unitsByKind(units)

	for _, kind := range []Kind{KindModel, KindCreateDTO, KindClientModel} {
		content := byKind[kind].Content
		assert.Contains(t, content, "bornAt: Date;", kind)
		assert.Contains(t, content, "count: number;", kind)
		assert.Contains(t, content, "ref: string;", kind)
	}

	assert.Contains(t, byKind[KindModel].Content, "type: 'timestamp'")
	assert.Contains(t, byKind[KindMigration].Content, "type: 'timestamp'")
	assert.Contains(t, byKind[KindModel].Content, "type: 'int'")
	assert.Contains(t, byKind[KindMigration].Content, "type: 'int'")
	assert.Contains(t, byKind[KindCreateDTO].Content, "@IsUUID()")
	assert.Contains(t, byKind[KindCreateDTO].Content, "@IsInt()")
}

func TestReservedIDIsNotDuplicated(t *testing.T) {
	in := emitInput(t, "comment", "id:uuid,body:text,parentId?:uuid")

	units, err := NewGenerator().Emit(in)
	require.NoError(t, err)

	for _, u := range units {
		switch u.Kind {
		case KindModel, KindClientModel:
			assert.Equal(t, 1, strings.Count(u.Content, "  id: string;"), u.Path)
		case KindMigration:
			assert.Equal(t, 1, strings.Count(u.Content, "name: 'id'"), u.Path)
		case KindCreateDTO, KindUpdateDTO:
			assert.NotContains(t, u.Content, "  id", u.Path)
		}
		if u.Kind != KindService && u.Kind != KindController && u.Kind != KindClientService {
			assert.Contains(t, u.Content, "parentId", u.Path)
		}
	}
}

func TestEmitWithOnlyReservedField(t *testing.T) {
	in := emitInput(t, "tag", "id:uuid")

	unit, err := NewGenerator().EmitKind(KindCreateDTO, in)
	require.NoError(t, err)
	assert.Equal(t, "export class CreateTagDto {\n}\n", unit.Content)
}

func TestManifests(t *testing.T) {
	in := emitInput(t, "orderItem", "quantity:int")

	units, err := NewGenerator().Emit(in)
	require.NoError(t, err)

	entries := Manifests(in, units)
	order, lines := GroupManifestEntries(entries)

	assert.Equal(t, []string{
		"src/entities.ts",
		"src/order-item/dto/index.ts",
		"client/src/models/index.ts",
		"client/src/services/index.ts",
	}, order)
	assert.Equal(t, []string{"export * from './order-item/order-item.entity';"}, lines["src/entities.ts"])
	assert.Equal(t, []string{
		"export * from './create-order-item.dto';",
		"export * from './update-order-item.dto';",
	}, lines["src/order-item/dto/index.ts"])
	assert.Equal(t, []string{"export * from './order-item.model';"}, lines["client/src/models/index.ts"])
	assert.Equal(t, []string{"export * from './order-item.service';"}, lines["client/src/services/index.ts"])
}

func TestManifestsFollowEmittedUnits(t *testing.T) {
	in := emitInput(t, "product", "name:string")
	in.SkipClient = true

	units, err := NewGenerator().Emit(in)
	require.NoError(t, err)

	for _, e := range Manifests(in, units) {
		assert.False(t, e.Kind.IsClient())
		assert.False(t, strings.HasPrefix(e.Manifest, "client/"))
	}
}
