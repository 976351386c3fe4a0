package graph

// SchemaString is the SDL served at /graphql.
const SchemaString = `
	schema {
		query: Query
		mutation: Mutation
	}

	type User {
		id: ID!
		username: String!
		favoriteGenre: String!
	}

	type Token {
		value: String!
	}

	type Author {
		id: ID!
		name: String!
		born: Int
		bookCount: Int!
	}

	type Book {
		id: ID!
		title: String!
		author: Author!
		published: Int!
		genres: [String!]!
	}

	type Query {
		me: User
		bookCount: Int!
		authorCount: Int!
		allBooks(author: String, genre: String): [Book!]!
		allAuthors: [Author!]!
	}

	type Mutation {
		createUser(username: String!, favoriteGenre: String!, password: String!): User
		login(username: String!, password: String!): Token
		addBook(title: String!, author: String!, published: Int!, genres: [String!]!): Book
		editAuthor(name: String!, setBornTo: Int!): Author
	}
`
